package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/platform/money"
)

const title = "Comprobante - Manolo's Gestión"

// Renderer implementa charges.ReceiptRenderer con un A4 simple.
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func (r *Renderer) RenderReceipt(rc charges.Receipt) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.SetTitle(title, true)
	doc.SetCreationDate(r.now())
	doc.AddPage()

	// las fuentes core son cp1252: tildes y ñ pasan por el traductor
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, tr(title), "", 1, "C", false, 0, "")
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		doc.CellFormat(0, 8, tr(fmt.Sprintf("%s: %s", label, value)), "", 1, "L", false, 0, "")
	}
	line("Cliente", rc.Client)
	line("Servicio", rc.Service)
	line("Fecha", rc.Date)
	line("Cantidad", fmt.Sprintf("%d", rc.Quantity))
	line("Valor unitario", money.FormatCOP(rc.UnitAmount))
	line("Estado", string(rc.Status))
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, tr("Total: "+money.FormatCOP(rc.Total)), "T", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 6, tr("Ref. "+rc.ChargeID), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt %s: %w", rc.ChargeID, err)
	}
	return buf.Bytes(), nil
}
