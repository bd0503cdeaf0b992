package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
)

// Nombres de colecciones usadas por el gateway.
const (
	Clients   = "clients"
	Pets      = "pets"
	Services  = "services"
	Charges   = "charges"
	Reminders = "reminders"
	Users     = "users"
)

// Filter es igualdad campo -> valor string sobre el documento (AND).
type Filter map[string]string

// Store es un almacén de documentos JSON agrupados por colección.
// Los documentos se guardan tal cual; el id viaja también dentro del body como "_id".
type Store interface {
	Insert(ctx context.Context, collection, id string, doc []byte) error
	Get(ctx context.Context, collection, id string) ([]byte, error)
	// List devuelve los documentos en orden de inserción.
	List(ctx context.Context, collection string, filter Filter) ([][]byte, error)
	// Update mezcla set sobre el documento (semántica $set). ErrNotFound si no existe.
	Update(ctx context.Context, collection, id string, set map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	DeleteWhere(ctx context.Context, collection string, filter Filter) (int, error)
	Count(ctx context.Context, collection string, filter Filter) (int, error)
}

// Matches evalúa un Filter sobre un documento ya decodificado.
// Los adapters que filtran en memoria lo comparten.
func Matches(doc map[string]any, filter Filter) bool {
	for k, want := range filter {
		v, ok := doc[k]
		if !ok {
			return false
		}
		s, ok := v.(string)
		if !ok || s != want {
			return false
		}
	}
	return true
}
