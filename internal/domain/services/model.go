package services

import "time"

// Service es un servicio ofrecido (paseo, baño...). Rate en pesos COP, sin decimales.
type Service struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rate        int64     `json:"rate"`
	Duration    string    `json:"duration"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}
