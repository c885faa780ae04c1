package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/auth"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/sales"
	"github.com/ilydev-openproject/salesaice/internal/metrics"
	"github.com/ilydev-openproject/salesaice/internal/middleware"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"github.com/ilydev-openproject/salesaice/log"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type handlers struct {
	sales   *sales.Server
	auth    *auth.Server
	limiter *ratelimit.MultiKeyLimiter
	health  healthpb.HealthServer
}

func (s *Server) setupHTTPAPI(salesServer *sales.Server, authServer *auth.Server, m *metrics.Metrics, l *ratelimit.MultiKeyLimiter) http.Handler {
	if l == nil {
		l = ratelimit.NewMultiKeyLimiter()
	}
	h := &handlers{
		sales:   salesServer,
		auth:    authServer,
		limiter: l,
		health:  s.health,
	}

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		middleware.ClientIdentifier,
		log.RequestLogger(slog.Default()),
		chimw.Recoverer,
		cors.Handler(cors.Options{
			AllowOriginFunc: func(_ *http.Request, origin string) bool {
				return isOriginAllowed(origin, s.c.AllowedOrigins)
			},
			AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
			MaxAge:         300,
		}),
		maxBody(s.c.MaxBodyBytes),
	)
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/healthz", h.healthz)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/reps", h.createRep)
		r.Delete("/reps", h.deleteRep)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(authServer.JwtAuth), authServer.WithAuth)

		r.Get("/dashboard", h.dashboard)
		r.Get("/schedule/today", h.todaySchedule)

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.listStores)
			r.Post("/", h.addStore)
			r.Post("/import", h.importStores)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getStore)
				r.Put("/", h.updateStore)
				r.Delete("/", h.deleteStore)
				r.Get("/visits", h.listStoreVisits)
				r.Get("/orders", h.listStoreOrders)
				r.Get("/velocity", h.storeVelocity)
				r.Get("/rewards", h.rewardStatus)
				r.Post("/rewards/claim", h.claimReward)
				r.Post("/rewards/undo", h.undoReward)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.addProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getProduct)
				r.Put("/", h.updateProduct)
				r.Delete("/", h.deleteProduct)
				r.Put("/availability", h.setProductAvailability)
				r.Post("/image", h.uploadProductImage)
			})
		})

		r.Route("/visits", func(r chi.Router) {
			r.Get("/", h.listVisits)
			r.Post("/", h.addVisit)
			r.Delete("/{id}", h.deleteVisit)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/uuid/{uuid}", h.getOrderByUUID)
			r.Get("/{id}", h.getOrder)
			r.Delete("/{id}", h.deleteOrder)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/stores", h.storeReport)
			r.Get("/products", h.productReport)
			r.Get("/snapshot", h.snapshot)
		})

		r.Get("/target", h.getTarget)
		r.Put("/target", h.saveTarget)
	})

	return r
}

func maxBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// local development
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
