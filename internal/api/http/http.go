package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	grpcLogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/auth"
	"github.com/ilydev-openproject/salesaice/internal/apisrv/sales"
	"github.com/ilydev-openproject/salesaice/internal/metrics"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"github.com/ilydev-openproject/salesaice/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// MaxBodyBytes caps request bodies, image uploads included.
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

const defaultMaxBodyBytes = 12 << 20

// Server is the http server
type Server struct {
	hs     *http.Server
	gs     *grpc.Server
	health *health.Server
	c      *Config
	done   chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaultMaxBodyBytes
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		c:      config,
		health: health.NewServer(),
		done:   make(chan struct{}),
	}
}

// Done returns a channel that is closed when the listener exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Health returns the gRPC health server so the owner can flip the serving status.
func (s *Server) Health() *health.Server {
	return s.health
}

func (s *Server) newGRPCServer() *grpc.Server {
	opts := []grpcLogging.Option{
		grpcLogging.WithLogOnEvents(grpcLogging.StartCall, grpcLogging.FinishCall),
	}
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcLogging.UnaryServerInterceptor(log.InterceptorLogger(slog.Default()), opts...),
			grpcRecovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpcLogging.StreamServerInterceptor(log.InterceptorLogger(slog.Default()), opts...),
			grpcRecovery.StreamServerInterceptor(),
		),
	)
	healthpb.RegisterHealthServer(gs, s.health)
	return gs
}

// Handler multiplexes gRPC (health) and the JSON API on one h2c listener.
func (s *Server) Handler(salesServer *sales.Server, authServer *auth.Server, m *metrics.Metrics, l *ratelimit.MultiKeyLimiter) http.Handler {
	if s.gs == nil {
		s.gs = s.newGRPCServer()
	}
	api := s.setupHTTPAPI(salesServer, authServer, m, l)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.Contains(r.Header.Get("Content-Type"), "application/grpc") {
			s.gs.ServeHTTP(w, r)
			return
		}
		api.ServeHTTP(w, r)
	})
	return h2c.NewHandler(handler, &http2.Server{})
}

// Start starts the listener in the background.
func (s *Server) Start(ctx context.Context,
	salesServer *sales.Server,
	authServer *auth.Server,
	m *metrics.Metrics,
	l *ratelimit.MultiKeyLimiter,
) error {
	if s.hs != nil {
		return fmt.Errorf("http server already started")
	}

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(salesServer, authServer, m, l),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		slog.Default().InfoContext(ctx, "salesaice listener started",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop marks the service as not serving and drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	s.health.Shutdown()
	ctx, cancel := context.WithTimeout(ctx, s.c.ShutdownTimeout)
	defer cancel()
	err := s.hs.Shutdown(ctx)
	s.gs.Stop()
	return err
}
