package appdata

type ChargeStatus string

const (
	ChargePending ChargeStatus = "pending"
	ChargePaid    ChargeStatus = "paid"
	ChargeOverdue ChargeStatus = "overdue"
)

type Channel string

const (
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelEmail    Channel = "Email"
)

type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderSent    ReminderStatus = "sent"
	ReminderFailed  ReminderStatus = "failed"
)

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Client struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type Pet struct {
	ID       string   `json:"_id"`
	ClientID string   `json:"clientId"`
	Name     string   `json:"name"`
	Species  string   `json:"species"`
	Breed    string   `json:"breed,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type Service struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rate        int64  `json:"rate"`
	Duration    string `json:"duration,omitempty"`
	Active      bool   `json:"active"`
}

// Charge guarda el precio unitario capturado al crear; el total no se almacena.
type Charge struct {
	ID         string       `json:"_id"`
	ClientID   string       `json:"clientId"`
	ServiceID  string       `json:"serviceId"`
	Date       string       `json:"date"`
	Quantity   int          `json:"quantity"`
	UnitAmount int64        `json:"unitAmount"`
	Status     ChargeStatus `json:"status"`
}

func (c Charge) Total() int64 {
	return c.UnitAmount * int64(c.Quantity)
}

type Reminder struct {
	ID       string         `json:"_id"`
	ClientID string         `json:"clientId"`
	Channel  Channel        `json:"channel"`
	Date     string         `json:"date"`
	Status   ReminderStatus `json:"status"`
	Subject  string         `json:"subject,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// Data es el espejo completo. Cada slice conserva el orden de llegada.
type Data struct {
	Users     []User
	Clients   []Client
	Pets      []Pet
	Services  []Service
	Charges   []Charge
	Reminders []Reminder
}

func (u User) key() string     { return u.ID }
func (c Client) key() string   { return c.ID }
func (p Pet) key() string      { return p.ID }
func (s Service) key() string  { return s.ID }
func (c Charge) key() string   { return c.ID }
func (r Reminder) key() string { return r.ID }

// Entradas de creación: sin id, lo asigna el gateway.

type NewClient struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type NewPet struct {
	ClientID string   `json:"clientId"`
	Name     string   `json:"name"`
	Species  string   `json:"species"`
	Breed    string   `json:"breed,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type NewService struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rate        int64  `json:"rate"`
	Duration    string `json:"duration,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// NewCharge: UnitAmount nil => tarifa vigente del servicio; Quantity 0 => 1.
type NewCharge struct {
	ClientID   string       `json:"clientId"`
	ServiceID  string       `json:"serviceId"`
	Date       string       `json:"date,omitempty"`
	Quantity   int          `json:"quantity,omitempty"`
	UnitAmount *int64       `json:"unitAmount,omitempty"`
	Status     ChargeStatus `json:"status,omitempty"`
}

type NewReminder struct {
	ClientID string  `json:"clientId"`
	Channel  Channel `json:"channel"`
	Date     string  `json:"date,omitempty"`
	Subject  string  `json:"subject,omitempty"`
	Message  string  `json:"message,omitempty"`
}

// Patches: nil = campo ausente. Solo viajan los campos presentes.

type ClientPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (p ClientPatch) apply(c *Client) {
	set(&c.Name, p.Name)
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Address, p.Address)
}

type PetPatch struct {
	ClientID *string  `json:"clientId,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Species  *string  `json:"species,omitempty"`
	Breed    *string  `json:"breed,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

func (p PetPatch) apply(x *Pet) {
	set(&x.ClientID, p.ClientID)
	set(&x.Name, p.Name)
	set(&x.Species, p.Species)
	set(&x.Breed, p.Breed)
	setPtr(&x.Age, p.Age)
	setPtr(&x.Weight, p.Weight)
}

type ServicePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Rate        *int64  `json:"rate,omitempty"`
	Duration    *string `json:"duration,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (p ServicePatch) apply(s *Service) {
	set(&s.Name, p.Name)
	set(&s.Description, p.Description)
	set(&s.Rate, p.Rate)
	set(&s.Duration, p.Duration)
	set(&s.Active, p.Active)
}

// ChargePatch no expone unitAmount: el precio capturado no se edita.
// Status va solo; mezclarlo con otros campos se rechaza antes de enviar.
type ChargePatch struct {
	Date     *string       `json:"date,omitempty"`
	Quantity *int          `json:"quantity,omitempty"`
	Status   *ChargeStatus `json:"status,omitempty"`
}

func (p ChargePatch) apply(c *Charge) {
	set(&c.Date, p.Date)
	set(&c.Quantity, p.Quantity)
	set(&c.Status, p.Status)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtr[T any](dst **T, v *T) {
	if v != nil {
		cp := *v
		*dst = &cp
	}
}
