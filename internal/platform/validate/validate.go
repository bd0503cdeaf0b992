package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Errors acumula los problemas de un input para devolverlos juntos.
// El valor cero está listo para usar.
type Errors struct {
	merr *multierror.Error
}

func (e *Errors) Add(format string, args ...any) {
	e.merr = multierror.Append(e.merr, fmt.Errorf(format, args...))
}

func (e *Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add("%s is required", field)
	}
}

// Email valida solo si viene algo; usar Required aparte si es obligatorio.
func (e *Errors) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		e.Add("%s must be a valid email", field)
	}
}

func (e *Errors) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add("%s must be one of %s", field, strings.Join(allowed, ", "))
}

func (e *Errors) Len() int {
	if e.merr == nil {
		return 0
	}
	return e.merr.Len()
}

// Err devuelve nil si no hubo problemas. Si los hubo, envuelve sentinel
// con el detalle en una sola línea ("a; b; c").
func (e *Errors) Err(sentinel error) error {
	if e.merr == nil {
		return nil
	}
	e.merr.ErrorFormat = oneLine
	return fmt.Errorf("%w: %s", sentinel, e.merr.Error())
}

func oneLine(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
