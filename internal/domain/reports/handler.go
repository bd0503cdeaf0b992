package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// CSVRenderer serializa las filas del reporte.
type CSVRenderer interface {
	RenderChargesCSV(rows []ChargeRow) ([]byte, error)
}

func RegisterRoutes(r chi.Router, svc *Service, csv CSVRenderer) {
	r.Get("/reports/charges.csv", chargesCSVHandler(svc, csv))
}

type errorResponse struct {
	Message string `json:"message"`
}

// chargesCSVHandler godoc
// @Summary Reporte de cobros (CSV)
// @Description Columnas Client,Service,Date,Amount. from/to aceptan RFC3339 o YYYY-MM-DD; un to de solo fecha incluye el día completo.
// @Tags reports
// @Produce text/csv
// @Param from query string false "Desde"
// @Param to query string false "Hasta"
// @Success 200 {string} string "CSV"
// @Failure 400 {object} errorResponse
// @Router /reports/charges.csv [get]
func chargesCSVHandler(svc *Service, csv CSVRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := parseRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			writeError(w, err)
			return
		}

		rows, err := svc.ChargeRows(r.Context(), rng)
		if err != nil {
			writeError(w, err)
			return
		}

		body, err := csv.RenderChargesCSV(rows)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=charges.csv")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func parseRange(from, to string) (Range, error) {
	var rng Range
	if s := strings.TrimSpace(from); s != "" {
		t, _, err := parseBound(s)
		if err != nil {
			return Range{}, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
		rng.From = &t
	}
	if s := strings.TrimSpace(to); s != "" {
		t, dateOnly, err := parseBound(s)
		if err != nil {
			return Range{}, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		rng.To = &t
	}
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		return Range{}, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	return rng, nil
}

func parseBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("must be RFC3339 or YYYY-MM-DD, got %q", s)
	}
	return t, true, nil
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := http.StatusInternalServerError, "internal error"
	if errors.Is(err, ErrInvalidInput) {
		status, msg = http.StatusBadRequest, err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: msg})
}
