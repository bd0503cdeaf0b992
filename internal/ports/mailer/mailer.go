package mailer

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("mailer not configured")

// Mailer es el transporte de correo: destinatario, asunto, cuerpo -> ok o error.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
	Verify(ctx context.Context) error
}

// Unconfigured falla siempre; se usa cuando no hay SMTP_HOST/SMTP_FROM.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, string, string, string) error { return ErrNotConfigured }
func (Unconfigured) Verify(context.Context) error                       { return ErrNotConfigured }
