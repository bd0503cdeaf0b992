package reminders

import "time"

// Channel es el medio por el que se envía el recordatorio.
// @Enum WhatsApp, Email
type Channel string

const (
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelEmail    Channel = "Email"
)

// Status lo decide el gateway después de intentar el envío.
// @Enum pending, sent, failed
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

const (
	DefaultSubject = "Recordatorio de Manolo's Gestión"
	DefaultMessage = "Hola, este es un recordatorio"
)

type Reminder struct {
	ID        string    `json:"_id"`
	ClientID  string    `json:"clientId"`
	Channel   Channel   `json:"channel"`
	Date      string    `json:"date"` // RFC3339
	Status    Status    `json:"status"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
