package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appauth "github.com/bryanwahyu/spinalscan/internal/application/auth"
	appchat "github.com/bryanwahyu/spinalscan/internal/application/chat"
	apppredictions "github.com/bryanwahyu/spinalscan/internal/application/predictions"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
	"github.com/bryanwahyu/spinalscan/internal/domain/validation"
	"github.com/bryanwahyu/spinalscan/internal/infra/token"
	"github.com/bryanwahyu/spinalscan/internal/middleware"
)

// errForbidden marks a request whose token is valid but addresses
// another user's data.
var errForbidden = errors.New("forbidden")

type Router struct {
	auth        *appauth.Service
	predictions *apppredictions.Service
	chat        *appchat.Service
	tokens      *token.Manager
}

// Options carries the ambient wiring the router needs besides the
// services themselves.
type Options struct {
	AllowedOrigins    []string
	RateLimitCapacity int
	RateLimitRefill   int
	StaticDir         string
	HealthCheckers    map[string]middleware.HealthChecker
}

func NewRouter(authSvc *appauth.Service, predSvc *apppredictions.Service, chatSvc *appchat.Service, tokens *token.Manager, opts Options) http.Handler {
	r := &Router{auth: authSvc, predictions: predSvc, chat: chatSvc, tokens: tokens}
	mux := chi.NewRouter()

	mux.Use(middleware.Logging)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(api chi.Router) {
		api.Group(func(pub chi.Router) {
			pub.Use(middleware.RateLimit(opts.RateLimitCapacity, opts.RateLimitRefill))
			pub.Post("/auth/register", r.wrap(r.handleRegister))
			pub.Post("/auth/login", r.wrap(r.handleLogin))
		})

		api.Group(func(priv chi.Router) {
			priv.Use(middleware.JWTAuth(tokens))
			priv.Post("/predict/upload", r.wrap(r.handleUpload))
			priv.Get("/predict/stats", r.wrap(r.handleStats))
			// Chat routes sit behind the same token check as the
			// prediction routes; the owner always comes from claims.
			priv.Post("/chatbot/ask", r.wrap(r.handleAsk))
			priv.Get("/user/chat-history/{userId}", r.wrap(r.handleChatHistory))
			priv.Get("/user/profile/{email}", r.wrap(r.handleProfile))
		})
	})

	if opts.StaticDir != "" {
		mux.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain errors onto the HTTP taxonomy: validation and
// credential failures are 400, ownership mismatches 403, unknown
// records 404, everything else a logged 500 with no detail leaked.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case validation.Is(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, users.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, users.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, "Invalid credentials")
		case errors.Is(err, users.ErrNotFound), errors.Is(err, sql.ErrNoRows):
			writeError(w, http.StatusNotFound, "Not found")
		case errors.Is(err, errForbidden):
			writeError(w, http.StatusForbidden, "Forbidden")
		default:
			log.Printf("handler error: method=%s path=%s err=%v", req.Method, req.URL.Path, err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, map[string]string{"msg": msg})
}
