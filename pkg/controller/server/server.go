package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/newgit/pkg/domain/interfaces"
	"github.com/secmon-lab/newgit/pkg/domain/types"
	"github.com/secmon-lab/newgit/pkg/utils/logging"
)

// UserEmailHeader carries the requester's email. The chat front end is
// trusted to set it from the authenticated chat user.
const UserEmailHeader = "X-Newgit-User-Email"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is JSON encoded or a constant
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error_kind":"unknown"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type config struct {
	apiToken types.APIToken
}

type Option func(*config)

// WithAPIToken requires "Authorization: Bearer <token>" on /api routes.
func WithAPIToken(token types.APIToken) Option {
	return func(cfg *config) {
		cfg.apiToken = token
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireAPIToken(cfg.apiToken))
		r.Post("/repositories", handleCreateRepository(uc))
		r.Get("/owners", handleSearchOwners(uc))
		r.Get("/templates", handleListTemplates(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
