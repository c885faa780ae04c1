package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/ilydev-openproject/salesaice/internal/auth/jwt"
	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/form"
	"github.com/ilydev-openproject/salesaice/internal/ratelimit"
	"golang.org/x/crypto/bcrypt"
)

const defaultTTL = 12 * time.Hour

// Server implements rep login and account management.
type Server struct {
	repo       dependency.Repository
	limiter    *ratelimit.MultiKeyLimiter
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	cost       int
	masterHash []byte
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	MasterPassword string `mapstructure:"master_password"`
	JWTTTL         string `mapstructure:"jwt_ttl"`
	BcryptCost     int    `mapstructure:"bcrypt_cost"`
}

// New creates a new auth server. The master password is kept only as a hash.
func New(c *Config, r dependency.Repository, l *ratelimit.MultiKeyLimiter) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	if c.MasterPassword == "" {
		return nil, fmt.Errorf("master password is empty")
	}

	cost := c.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.MasterPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("can't hash master password: %w", err)
	}

	ttl := defaultTTL
	if c.JWTTTL != "" {
		ttl, err = time.ParseDuration(c.JWTTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid jwt ttl %q: %w", c.JWTTTL, err)
		}
	}
	if l == nil {
		l = ratelimit.NewMultiKeyLimiter()
	}

	return &Server{
		repo:       r,
		limiter:    l,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:     ttl,
		cost:       cost,
		masterHash: hash,
	}, nil
}

// HashPassword returns the bcrypt hash stored for a rep.
func (s *Server) HashPassword(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s *Server) checkMaster(pw string) error {
	if bcrypt.CompareHashAndPassword(s.masterHash, []byte(pw)) != nil {
		return gerr.NotAuthenticated
	}
	return nil
}

// Login returns a token for a valid username and password. Attempts are
// limited per client ip and per username.
func (s *Server) Login(ctx context.Context, ip string, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := (&form.LoginRequest{LoginRequest: req}).Validate(); err != nil {
		return nil, err
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if err := s.limiter.CheckLogin(ip, username); err != nil {
		slog.Default().WarnContext(ctx, "login rate limited",
			slog.String("ip", ip),
			slog.String("username", username),
		)
		return nil, gerr.TooManyRequests
	}

	pwHash, err := s.repo.Reps().PasswordHashByUsername(ctx, username)
	if err != nil {
		if !isNotFound(err) {
			slog.Default().ErrorContext(ctx, "can't get rep password hash",
				slog.String("err", err.Error()),
			)
			return nil, gerr.Internal("can't get rep")
		}
		return nil, gerr.NotAuthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pwHash), []byte(req.Password)); err != nil {
		return nil, gerr.NotAuthenticated
	}

	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, gerr.Internal("can't create token: %v", err)
	}

	slog.Default().InfoContext(ctx, "rep logged in", slog.String("username", username))
	return &dto.LoginResponse{AuthToken: token}, nil
}

// CreateRep adds a rep account. It requires the master password.
func (s *Server) CreateRep(ctx context.Context, req *dto.CreateRepRequest) (*dto.LoginResponse, error) {
	if err := (&form.CreateRepRequest{CreateRepRequest: req}).Validate(); err != nil {
		return nil, err
	}
	if err := s.checkMaster(req.MasterPassword); err != nil {
		return nil, err
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))

	pwHash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, gerr.Internal("can't hash password: %v", err)
	}

	if err := s.repo.Reps().AddRep(ctx, username, pwHash); err != nil {
		if s.repo.IsErrUniqueViolation(err) {
			return nil, gerr.RepAlreadyExists
		}
		slog.Default().ErrorContext(ctx, "can't add rep",
			slog.String("err", err.Error()),
		)
		return nil, gerr.Internal("can't add rep")
	}

	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return nil, gerr.Internal("can't create token: %v", err)
	}
	return &dto.LoginResponse{AuthToken: token}, nil
}

// DeleteRep removes a rep account. It requires the master password.
func (s *Server) DeleteRep(ctx context.Context, req *dto.DeleteRepRequest) error {
	if req == nil {
		return gerr.InvalidArgument("request is nil")
	}
	if err := s.checkMaster(req.MasterPassword); err != nil {
		return err
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if err := s.repo.Reps().DeleteRep(ctx, username); err != nil {
		if isNotFound(err) {
			return gerr.RepNotFound
		}
		slog.Default().ErrorContext(ctx, "can't delete rep",
			slog.String("err", err.Error()),
		)
		return gerr.Internal("can't delete rep")
	}
	return nil
}

// WithAuth rejects requests without a valid token. It expects
// jwtauth.Verifier to run first.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if _, ok := jwt.SubjectFromContext(r.Context()); !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
