package reports

// ChargeRow es una línea del reporte de cobros. Amount = unitAmount × quantity.
type ChargeRow struct {
	ChargeID string
	Client   string
	Service  string
	Date     string
	Status   string
	Amount   int64
}
