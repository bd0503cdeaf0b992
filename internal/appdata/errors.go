package appdata

import (
	"errors"
	"fmt"
	"net/http"

	"manolos-gestion/internal/platform/httpclient"
)

var ErrAlreadyLoaded = errors.New("appdata: mirror already loaded")

// Stage indica hasta dónde llegó una operación fallida.
type Stage int

const (
	// StageNotAttempted: rechazada localmente, no salió ningún request.
	StageNotAttempted Stage = iota
	// StageTransport: el request no obtuvo respuesta (red, timeout, contexto).
	StageTransport
	// StageRejected: el gateway respondió no-2xx. Err envuelve un *httpclient.HTTPError.
	StageRejected
	// StageDecode: el gateway aceptó pero la respuesta no se pudo leer.
	StageDecode
)

func (s Stage) String() string {
	switch s {
	case StageNotAttempted:
		return "not attempted"
	case StageTransport:
		return "transport"
	case StageRejected:
		return "rejected"
	case StageDecode:
		return "decode"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// MutationError es el único tipo de error que devuelven las operaciones del cache.
// En todos los casos el espejo queda como estaba.
type MutationError struct {
	Op       string
	Resource string
	Stage    Stage
	Err      error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Resource, e.Stage, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

func stageOf(err error) (Stage, bool) {
	var me *MutationError
	if !errors.As(err, &me) {
		return 0, false
	}
	return me.Stage, true
}

func IsNotAttempted(err error) bool {
	s, ok := stageOf(err)
	return ok && s == StageNotAttempted
}

func IsRejected(err error) bool {
	s, ok := stageOf(err)
	return ok && s == StageRejected
}

// IsNotFound: el gateway respondió 404 (id inexistente o ya borrado).
func IsNotFound(err error) bool {
	he := httpclient.AsHTTPError(err)
	return IsRejected(err) && he != nil && he.StatusCode == http.StatusNotFound
}
