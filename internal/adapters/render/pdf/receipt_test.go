package pdf

import (
	"bytes"
	"testing"

	"manolos-gestion/internal/domain/charges"
)

func TestRenderReceipt(t *testing.T) {
	out, err := NewRenderer().RenderReceipt(charges.Receipt{
		ChargeID:   "b1",
		Client:     "Carlos Pérez",
		Service:    "Baño y corte",
		Date:       "2025-02-01T18:00:00Z",
		Quantity:   2,
		UnitAmount: 15000,
		Total:      30000,
		Status:     charges.StatusPaid,
	})
	if err != nil {
		t.Fatalf("RenderReceipt error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("expected a PDF document, got %q", out[:min(len(out), 16)])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Fatalf("PDF trailer missing")
	}
}
