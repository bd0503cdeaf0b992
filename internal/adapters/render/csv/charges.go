package csv

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"manolos-gestion/internal/domain/reports"
)

var chargesHeader = []string{"Client", "Service", "Date", "Amount"}

// Renderer implementa reports.CSVRenderer.
type Renderer struct{}

func (Renderer) RenderChargesCSV(rows []reports.ChargeRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(chargesHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{r.Client, r.Service, r.Date, strconv.FormatInt(r.Amount, 10)}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
