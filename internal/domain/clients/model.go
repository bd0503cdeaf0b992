package clients

import "time"

// Client es el dueño de las mascotas y el destinatario de cobros y recordatorios.
type Client struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
