package charges

import "time"

// Status del cobro.
// @Enum pending, paid, overdue
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Charge es un cobro a un cliente por un servicio.
// UnitAmount es la tarifa del servicio al momento de crear el cobro y no cambia después.
type Charge struct {
	ID         string    `json:"_id"`
	ClientID   string    `json:"clientId"`
	ServiceID  string    `json:"serviceId"`
	Date       string    `json:"date"` // RFC3339
	Quantity   int       `json:"quantity"`
	UnitAmount int64     `json:"unitAmount"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Total se calcula siempre, nunca se guarda.
func (c Charge) Total() int64 {
	return c.UnitAmount * int64(c.Quantity)
}

// ListFilter: campos vacíos no filtran.
type ListFilter struct {
	ClientID string
	Status   Status
}

// Receipt reúne lo que se imprime en el comprobante.
type Receipt struct {
	ChargeID   string
	Client     string
	Service    string
	Date       string
	Quantity   int
	UnitAmount int64
	Total      int64
	Status     Status
}
