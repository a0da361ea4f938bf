package authstub

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves the stub authentication API.
type Server struct {
	users  *memoryStore
	tokens tokenIssuer
	log    *slog.Logger
}

// New returns a Server configured from cfg. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		users:  newMemoryStore(cfg.BcryptCost),
		tokens: tokenIssuer{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL, now: time.Now},
		log:    logger,
	}
}

// Handler returns the router with every route mounted under /api/v1.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Get("/me", s.handleMe)
	})
	return r
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "invalid JSON body"})
		return
	}
	if !strings.Contains(req.Email, "@") || req.Password == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "email and password are required"})
		return
	}

	u, err := s.users.create(req.Email, req.Password)
	switch {
	case errors.Is(err, errEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Email already registered"})
		return
	case err != nil:
		s.log.Error("create user", "email", req.Email, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
		return
	}
	s.log.Info("user registered", "email", u.Email, "id", u.ID)
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "invalid form body"})
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "username and password are required"})
		return
	}

	u, err := s.users.authenticate(username, password)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Incorrect email or password"})
		return
	}
	tok, err := s.tokens.issue(u)
	if err != nil {
		s.log.Error("issue token", "email", u.Email, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: tok, TokenType: "bearer"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}
	email, err := s.tokens.verify(raw)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Could not validate credentials"})
		return
	}
	u, ok := s.users.get(email)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Could not validate credentials"})
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// accessLog records method, path, remote, status, bytes and duration.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", r.Header.Get("X-Request-ID"),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
