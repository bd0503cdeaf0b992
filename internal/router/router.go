package router

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "manolos-gestion/docs"
	"manolos-gestion/internal/adapters/auth/jwt"
	"manolos-gestion/internal/adapters/render/csv"
	"manolos-gestion/internal/adapters/render/pdf"
	"manolos-gestion/internal/adapters/storage/docrepo"
	"manolos-gestion/internal/adapters/storage/memory"
	"manolos-gestion/internal/domain/charges"
	"manolos-gestion/internal/domain/clients"
	"manolos-gestion/internal/domain/pets"
	"manolos-gestion/internal/domain/reminders"
	"manolos-gestion/internal/domain/reports"
	"manolos-gestion/internal/domain/services"
	"manolos-gestion/internal/domain/users"
	"manolos-gestion/internal/middleware"
	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/ports/auth"
	"manolos-gestion/internal/ports/docstore"
	"manolos-gestion/internal/ports/mailer"
)

// TokenSigner emite y verifica los tokens de login.
type TokenSigner interface {
	auth.AuthVerifier
	auth.TokenIssuer
}

type Options struct {
	// Store: nil => in-memory.
	Store docstore.Store

	// Mailer: nil => Unconfigured (los recordatorios por Email quedan failed).
	Mailer mailer.Mailer

	// Signer: nil => secreto aleatorio por proceso (tokens no sobreviven un reinicio).
	Signer TokenSigner

	Logger logger.Logger

	// RequireAuth exige claims en /api/* salvo /api/ping y /api/auth/*.
	// Sin RequireAuth se acepta también X-Debug-User-ID (modo dev).
	RequireAuth bool

	CORSOrigins []string

	// Seed carga los datos de ejemplo si no hay clientes.
	Seed bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = memory.NewStore()
	}
	mail := opts.Mailer
	if mail == nil {
		mail = mailer.Unconfigured{}
	}
	signer := opts.Signer
	if signer == nil {
		signer = ephemeralSigner(log)
	}

	metrics := middleware.NewMetrics()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Instrument)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.AuthContext(signer, !opts.RequireAuth))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	clientsSvc := clients.NewService(docrepo.NewClientsRepo(store))
	petsSvc := pets.NewService(docrepo.NewPetsRepo(store), clientsSvc)
	catalog := services.NewCatalog(docrepo.NewServicesRepo(store))
	chargesSvc := charges.NewService(docrepo.NewChargesRepo(store), clientsSvc, catalog)
	remindersSvc := reminders.NewService(docrepo.NewRemindersRepo(store), clientsSvc, mail, log.With(map[string]any{"component": "reminders"}))
	usersSvc := users.NewService(docrepo.NewUsersRepo(store), signer)
	reportsSvc := reports.NewService(chargesSvc, clientsSvc, catalog)

	// borrar un cliente arrastra sus mascotas, cobros y recordatorios
	clientsSvc.AddDependents(petsSvc, chargesSvc, remindersSvc)

	if opts.Seed {
		s := seeder{clients: clientsSvc, pets: petsSvc, catalog: catalog, charges: chargesSvc}
		seeded, err := s.seed(context.Background())
		switch {
		case err != nil:
			log.Error("seed failed", map[string]any{"error": err})
		case seeded:
			log.Info("sample data loaded", nil)
		}
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
		})

		users.RegisterRoutes(api, usersSvc)

		api.Group(func(pr chi.Router) {
			if opts.RequireAuth {
				pr.Use(middleware.RequireAuth)
			}

			clients.RegisterRoutes(pr, clientsSvc)
			pets.RegisterRoutes(pr, petsSvc)
			services.RegisterRoutes(pr, catalog)
			charges.RegisterRoutes(pr, chargesSvc, pdf.NewRenderer())
			reminders.RegisterRoutes(pr, remindersSvc)
			reports.RegisterRoutes(pr, reportsSvc, csv.Renderer{})

			pr.Get("/mail/verify", verifyMailHandler(mail, log))
			pr.Get("/mail/test", testMailHandler(mail, log))
		})
	})

	return r
}

func ephemeralSigner(log logger.Logger) TokenSigner {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	s, err := jwt.NewSigner(hex.EncodeToString(b), 24*time.Hour)
	if err != nil {
		panic(err)
	}
	log.Warn("JWT_SECRET not set, using a per-process secret", nil)
	return s
}
