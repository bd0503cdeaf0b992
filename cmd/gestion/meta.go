package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/cli"

	"manolos-gestion/internal/appdata"
	"manolos-gestion/internal/config"
	"manolos-gestion/internal/platform/httpclient"
	"manolos-gestion/internal/platform/logger"
)

// Env: GESTION_API_URL, GESTION_TOKEN, GESTION_TIMEOUT, GESTION_LOG_LEVEL.
type Env struct {
	APIURL   string        `envconfig:"API_URL" default:"http://localhost:8080"`
	Token    string        `envconfig:"TOKEN"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"15s"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"warn"`
}

// Meta es lo que comparten todos los comandos.
type Meta struct {
	Ui cli.Ui

	// Open arma el cache; en tests apunta a un gateway de prueba.
	Open func() (*appdata.Cache, error)
}

func openFromEnv() (*appdata.Cache, error) {
	var env Env
	config.UnsetEmpty("gestion", &env)
	if err := envconfig.Process("gestion", &env); err != nil {
		return nil, err
	}

	api, err := httpclient.NewWithBaseURL(env.APIURL, env.Timeout)
	if err != nil {
		return nil, err
	}
	api.Token = strings.TrimSpace(env.Token)

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(env.LogLevel),
		App:    "gestion",
		Output: os.Stderr,
	})
	return appdata.New(api, log), nil
}

// load abre el cache y trae el espejo. Los errores ya se reportan por Ui.
func (m *Meta) load(ctx context.Context) (*appdata.Cache, bool) {
	c, err := m.Open()
	if err != nil {
		m.Ui.Error(fmt.Sprintf("Error configuring client: %s", err))
		return nil, false
	}
	if err := c.Load(ctx); err != nil {
		m.Ui.Error(fmt.Sprintf("Error loading data: %s", err))
		return nil, false
	}
	return c, true
}

func (m *Meta) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// oneArg exige exactamente un argumento posicional (un id).
func (m *Meta) oneArg(args []string, what string) (string, bool) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		m.Ui.Error(fmt.Sprintf("Expected exactly one argument: %s", what))
		return "", false
	}
	return strings.TrimSpace(args[0]), true
}
