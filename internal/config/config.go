package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config agrupa toda la configuración del gateway leída desde env.
type Config struct {
	HTTP    HTTPConfig
	Storage StorageConfig
	SMTP    SMTPConfig
	Auth    AuthConfig
	Logging LoggingConfig

	// SeedData carga los datos de ejemplo si la colección de clientes está vacía.
	SeedData bool `envconfig:"SEED_DATA" default:"false"`
}

type HTTPConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS"`
}

// StorageConfig: DB_DSN tiene prioridad sobre SQLITE_PATH; sin ninguno se usa memoria.
type StorageConfig struct {
	PostgresDSN string `envconfig:"DB_DSN"`
	SQLitePath  string `envconfig:"SQLITE_PATH"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	From     string `envconfig:"SMTP_FROM"`
}

func (c SMTPConfig) Configured() bool {
	return strings.TrimSpace(c.Host) != "" && strings.TrimSpace(c.From) != ""
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"168h"`
	// Required exige claims en /api/* (salvo /api/auth y /api/ping).
	Required bool `envconfig:"AUTH_REQUIRED" default:"false"`
}

type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	App    string `envconfig:"APP_NAME" default:"manolos-gestion"`
}

// Load lee la configuración desde variables de entorno aplicando defaults.
func Load() (Config, error) {
	var cfg Config
	UnsetEmpty("", &cfg)
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.Required && strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return Config{}, fmt.Errorf("config: AUTH_REQUIRED needs JWT_SECRET")
	}
	return cfg, nil
}

// Addr: puerto vacío => 8080.
func (c HTTPConfig) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// UnsetEmpty quita del entorno las variables de spec definidas pero vacías,
// para que envconfig aplique el default en vez de parsear "".
// Con prefix se limpian tanto PREFIX_KEY como KEY.
func UnsetEmpty(prefix string, spec any) {
	t := reflect.TypeOf(spec)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, key := range envKeys(t) {
		names := []string{key}
		if prefix != "" {
			names = append(names, strings.ToUpper(prefix)+"_"+key)
		}
		for _, name := range names {
			if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) == "" {
				_ = os.Unsetenv(name)
			}
		}
	}
}

func envKeys(t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := f.Tag.Get("envconfig")
		if key == "" && f.Type.Kind() == reflect.Struct {
			keys = append(keys, envKeys(f.Type)...)
			continue
		}
		if key != "" {
			keys = append(keys, strings.ToUpper(key))
		}
	}
	return keys
}
