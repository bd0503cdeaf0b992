package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/platform/validate"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrLimitReached = fmt.Errorf("client already has the maximum of %d pets", MaxPerClient)
)

// ClientLookup resuelve el dueño; lo implementa *clients.Service.
type ClientLookup interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
}

type Service struct {
	repo    Repository
	clients ClientLookup
	now     func() time.Time

	// serializa conteo + escritura para que el tope no se pase con altas concurrentes
	mu sync.Mutex
}

func NewService(repo Repository, clients ClientLookup) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
		now:     time.Now,
	}
}

type CreateInput struct {
	ClientID string
	Name     string
	Species  string
	Breed    string
	Age      *int
	Weight   *float64
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	ClientID *string
	Name     *string
	Species  *string
	Breed    *string
	Age      *int
	Weight   *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	var v validate.Errors
	v.Required("clientId", in.ClientID)
	v.Required("name", in.Name)
	v.Required("species", in.Species)
	checkMeasures(&v, in.Age, in.Weight)
	if err := v.Err(ErrInvalidInput); err != nil {
		return Pet{}, err
	}

	p := Pet{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(in.ClientID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Weight:    in.Weight,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOwner(ctx, p.ClientID); err != nil {
		return Pet{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve todas las mascotas, o las de un cliente si clientID no es vacío.
func (s *Service) List(ctx context.Context, clientID string) ([]Pet, error) {
	if strings.TrimSpace(clientID) != "" {
		return s.repo.ListByClient(ctx, clientID)
	}
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	var v validate.Errors
	if in.Name != nil {
		v.Required("name", *in.Name)
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		v.Required("species", *in.Species)
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		p.Age = in.Age
	}
	if in.Weight != nil {
		p.Weight = in.Weight
	}
	checkMeasures(&v, in.Age, in.Weight)

	moving := false
	if in.ClientID != nil {
		v.Required("clientId", *in.ClientID)
		next := strings.TrimSpace(*in.ClientID)
		moving = next != p.ClientID
		p.ClientID = next
	}
	if err := v.Err(ErrInvalidInput); err != nil {
		return Pet{}, err
	}

	// cambiar de dueño vuelve a chequear el tope en el cliente destino
	if moving {
		if err := s.checkOwner(ctx, p.ClientID); err != nil {
			return Pet{}, err
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteByClient implementa clients.Cascader.
func (s *Service) DeleteByClient(ctx context.Context, clientID string) (int, error) {
	return s.repo.DeleteByClient(ctx, clientID)
}

func (s *Service) checkOwner(ctx context.Context, clientID string) error {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return fmt.Errorf("%w: client %s does not exist", ErrInvalidInput, clientID)
		}
		return err
	}

	n, err := s.repo.CountByClient(ctx, clientID)
	if err != nil {
		return err
	}
	if n >= MaxPerClient {
		return ErrLimitReached
	}
	return nil
}

func checkMeasures(v *validate.Errors, age *int, weight *float64) {
	if age != nil && *age < 0 {
		v.Add("age must be >= 0")
	}
	if weight != nil && *weight < 0 {
		v.Add("weight must be >= 0")
	}
}
