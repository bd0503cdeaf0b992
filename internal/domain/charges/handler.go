package charges

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ReceiptRenderer genera el comprobante imprimible de un cobro.
type ReceiptRenderer interface {
	RenderReceipt(r Receipt) ([]byte, error)
}

func RegisterRoutes(r chi.Router, svc *Service, receipts ReceiptRenderer) {
	r.Route("/charges", func(cr chi.Router) {
		cr.Get("/", listChargesHandler(svc))
		cr.Post("/", createChargeHandler(svc))
		cr.Get("/{id}", getChargeHandler(svc))
		cr.Put("/{id}", updateChargeHandler(svc))
		cr.Put("/{id}/status", setStatusHandler(svc))
		cr.Get("/{id}/receipt", receiptHandler(svc, receipts))
		cr.Delete("/{id}", deleteChargeHandler(svc))
	})
}

type createChargeRequest struct {
	ClientID   string `json:"clientId"`
	ServiceID  string `json:"serviceId"`
	Date       string `json:"date"`
	Quantity   *int   `json:"quantity"`
	UnitAmount *int64 `json:"unitAmount"`
	Status     Status `json:"status"`
}

type updateChargeRequest struct {
	Date       *string `json:"date"`
	Quantity   *int    `json:"quantity"`
	UnitAmount *int64  `json:"unitAmount"`
	Status     *Status `json:"status"`
}

type setStatusRequest struct {
	Status Status `json:"status"`
}

// chargeResponse agrega el total calculado al documento.
type chargeResponse struct {
	Charge
	Total int64 `json:"total"`
}

type createdResponse struct {
	ID     string         `json:"id"`
	Record chargeResponse `json:"record"`
}

type ackResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// listChargesHandler godoc
// @Summary Listar cobros
// @Tags charges
// @Produce json
// @Param clientId query string false "Filtrar por cliente"
// @Param status query string false "pending | paid | overdue"
// @Success 200 {array} chargeResponse
// @Failure 400 {object} errorResponse
// @Router /charges [get]
func listChargesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			ClientID: q.Get("clientId"),
			Status:   Status(q.Get("status")),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]chargeResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toChargeResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createChargeHandler godoc
// @Summary Crear cobro
// @Description unitAmount por defecto es la tarifa actual del servicio y queda fija. quantity por defecto 1, status pending, date ahora.
// @Tags charges
// @Accept json
// @Produce json
// @Param payload body createChargeRequest true "Datos del cobro"
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Router /charges [post]
func createChargeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createChargeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			ClientID:   req.ClientID,
			ServiceID:  req.ServiceID,
			Date:       req.Date,
			Quantity:   req.Quantity,
			UnitAmount: req.UnitAmount,
			Status:     req.Status,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: c.ID, Record: toChargeResponse(c)})
	}
}

// getChargeHandler godoc
// @Summary Obtener cobro
// @Tags charges
// @Produce json
// @Param id path string true "ID del cobro"
// @Success 200 {object} chargeResponse
// @Failure 404 {object} errorResponse
// @Router /charges/{id} [get]
func getChargeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toChargeResponse(c))
	}
}

// updateChargeHandler godoc
// @Summary Actualizar cobro (fecha / cantidad)
// @Description unitAmount es inmutable; el estado se cambia con PUT /charges/{id}/status.
// @Tags charges
// @Accept json
// @Produce json
// @Param id path string true "ID del cobro"
// @Param payload body updateChargeRequest true "Campos a modificar"
// @Success 200 {object} chargeResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /charges/{id} [put]
func updateChargeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateChargeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Date:       req.Date,
			Quantity:   req.Quantity,
			UnitAmount: req.UnitAmount,
			Status:     req.Status,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toChargeResponse(c))
	}
}

// setStatusHandler godoc
// @Summary Cambiar estado del cobro
// @Tags charges
// @Accept json
// @Produce json
// @Param id path string true "ID del cobro"
// @Param payload body setStatusRequest true "Nuevo estado"
// @Success 200 {object} chargeResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /charges/{id}/status [put]
func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toChargeResponse(c))
	}
}

// receiptHandler godoc
// @Summary Descargar comprobante PDF
// @Tags charges
// @Produce application/pdf
// @Param id path string true "ID del cobro"
// @Success 200 {file} file
// @Failure 404 {object} errorResponse
// @Router /charges/{id}/receipt [get]
func receiptHandler(svc *Service, receipts ReceiptRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rc, err := svc.Receipt(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		doc, err := receipts.RenderReceipt(rc)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", id))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	}
}

// deleteChargeHandler godoc
// @Summary Eliminar cobro
// @Tags charges
// @Produce json
// @Param id path string true "ID del cobro"
// @Success 200 {object} ackResponse
// @Failure 404 {object} errorResponse
// @Router /charges/{id} [delete]
func deleteChargeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ackResponse{OK: true})
	}
}

func toChargeResponse(c Charge) chargeResponse {
	return chargeResponse{Charge: c, Total: c.Total()}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrImmutableField):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
