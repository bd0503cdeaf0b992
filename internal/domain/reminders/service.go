package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/platform/validate"
	"manolos-gestion/internal/ports/mailer"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("reminder not found")
)

type ClientLookup interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
}

type Service struct {
	repo    Repository
	clients ClientLookup
	mail    mailer.Mailer
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, clients ClientLookup, mail mailer.Mailer, log logger.Logger) *Service {
	if mail == nil {
		mail = mailer.Unconfigured{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		clients: clients,
		mail:    mail,
		log:     log,
		now:     time.Now,
	}
}

type CreateInput struct {
	ClientID string
	Channel  Channel
	Date     string
	Subject  string
	Message  string
}

// Create guarda el recordatorio y, si es por Email, lo envía en el momento.
// Un envío fallido deja status=failed pero no hace fallar la creación.
func (s *Service) Create(ctx context.Context, in CreateInput) (Reminder, error) {
	var v validate.Errors
	v.Required("clientId", in.ClientID)
	v.OneOf("channel", string(in.Channel), string(ChannelWhatsApp), string(ChannelEmail))

	now := s.now().UTC()
	date := now.Format(time.RFC3339)
	if raw := strings.TrimSpace(in.Date); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			v.Add("%s", err.Error())
		} else {
			date = t.UTC().Format(time.RFC3339)
		}
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Reminder{}, err
	}

	client, err := s.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return Reminder{}, fmt.Errorf("%w: client %s does not exist", ErrInvalidInput, in.ClientID)
		}
		return Reminder{}, err
	}

	rem := Reminder{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Channel:   in.Channel,
		Date:      date,
		Status:    StatusPending,
		Subject:   orDefault(in.Subject, DefaultSubject),
		Message:   orDefault(in.Message, DefaultMessage),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return Reminder{}, err
	}

	if rem.Channel != ChannelEmail {
		return rem, nil
	}

	log := s.log.With(map[string]any{"reminder_id": rem.ID, "client_id": client.ID})
	next := StatusSent
	if err := s.mail.Send(ctx, client.Email, rem.Subject, rem.Message); err != nil {
		log.Warn("reminder delivery failed", map[string]any{"error": err, "to": client.Email})
		next = StatusFailed
	} else {
		log.Info("reminder sent", map[string]any{"to": client.Email})
	}

	delivered := rem
	delivered.Status = next
	if err := s.repo.Update(ctx, delivered); err != nil {
		// el registro ya existe; se devuelve tal como quedó guardado
		log.Error("reminder status not saved", map[string]any{"error": err, "status": string(next)})
		return rem, nil
	}
	return delivered, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Reminder, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve todos, o los de un cliente si clientID no es vacío.
func (s *Service) List(ctx context.Context, clientID string) ([]Reminder, error) {
	return s.repo.List(ctx, strings.TrimSpace(clientID))
}

// DeleteByClient implementa clients.Cascader.
func (s *Service) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	return s.repo.DeleteByClient(ctx, clientID)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date must be RFC3339 or YYYY-MM-DD, got %q", raw)
}
