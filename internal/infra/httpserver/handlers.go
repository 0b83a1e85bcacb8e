package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bryanwahyu/spinalscan/internal/domain/validation"
	"github.com/bryanwahyu/spinalscan/internal/middleware"
)

// maxUploadBytes caps multipart request bodies. The client-side
// extension check is a UX hint only; this cap is the server's limit.
const maxUploadBytes = 16 << 20

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) error {
	var body registerRequest
	if err := decodeJSON(req, &body); err != nil {
		return err
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return validation.Errorf("All fields required")
	}
	if err := middleware.ValidateName(body.Name); err != nil {
		return validation.Errorf("%s", err)
	}
	if err := middleware.ValidateEmail(body.Email); err != nil {
		return validation.Errorf("%s", err)
	}

	if _, err := r.auth.Register(req.Context(), body.Name, body.Email, body.Password); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"msg": "Registration successful"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) error {
	var body loginRequest
	if err := decodeJSON(req, &body); err != nil {
		return err
	}
	if body.Email == "" || body.Password == "" {
		return validation.Errorf("Email and password are required")
	}

	tok, u, err := r.auth.Login(req.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"token": tok,
		"user": map[string]string{
			"id":    string(u.ID),
			"name":  u.Name,
			"email": u.Email,
		},
	})
}

// POST /api/predict/upload (multipart field "mriScan")
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	claims := middleware.ClaimsFromContext(req.Context())

	req.Body = http.MaxBytesReader(w, req.Body, maxUploadBytes)
	file, header, err := req.FormFile("mriScan")
	if err != nil {
		return validation.Errorf("No file uploaded")
	}
	defer file.Close()

	p, err := r.predictions.Upload(
		req.Context(),
		claims.UserID(),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
		header.Size,
	)
	if err != nil {
		return err
	}

	middleware.IncrementPredictions()
	return writeJSON(w, http.StatusOK, map[string]any{"prediction": p})
}

// GET /api/predict/stats?limit=N
func (r *Router) handleStats(w http.ResponseWriter, req *http.Request) error {
	claims := middleware.ClaimsFromContext(req.Context())

	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	stats, err := r.predictions.Stats(req.Context(), claims.UserID(), limit)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, stats)
}

type askRequest struct {
	// UserID is accepted for wire compatibility with older clients
	// but ignored: the owner comes from the verified token.
	UserID   string `json:"userId"`
	Question string `json:"question"`
}

// POST /api/chatbot/ask
func (r *Router) handleAsk(w http.ResponseWriter, req *http.Request) error {
	claims := middleware.ClaimsFromContext(req.Context())

	var body askRequest
	if err := decodeJSON(req, &body); err != nil {
		return err
	}
	question := middleware.SanitizeString(body.Question)
	if err := middleware.ValidateQuestion(question); err != nil {
		return validation.Errorf("%s", err)
	}

	answer, err := r.chat.Ask(req.Context(), claims.UserID(), question)
	if err != nil {
		return err
	}

	middleware.IncrementChatMessages()
	return writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// GET /api/user/chat-history/{userId}
func (r *Router) handleChatHistory(w http.ResponseWriter, req *http.Request) error {
	claims := middleware.ClaimsFromContext(req.Context())

	// The path parameter is kept for wire compatibility but must
	// name the authenticated user; nobody reads another user's log.
	if chi.URLParam(req, "userId") != string(claims.UserID()) {
		return errForbidden
	}

	entries, err := r.chat.History(req.Context(), claims.UserID())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, entries)
}

// GET /api/user/profile/{email}
func (r *Router) handleProfile(w http.ResponseWriter, req *http.Request) error {
	email := chi.URLParam(req, "email")

	u, err := r.auth.Profile(req.Context(), email)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{
		"name":  u.Name,
		"email": u.Email,
	})
}

func decodeJSON(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return validation.Errorf("Invalid request body")
	}
	return nil
}
