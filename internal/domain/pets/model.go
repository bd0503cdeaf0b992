package pets

import "time"

// MaxPerClient es el tope de mascotas por cliente.
const MaxPerClient = 7

// Pet pertenece a exactamente un cliente.
type Pet struct {
	ID        string    `json:"_id"`
	ClientID  string    `json:"clientId"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       *int      `json:"age"`    // años
	Weight    *float64  `json:"weight"` // kg
	CreatedAt time.Time `json:"createdAt"`
}
