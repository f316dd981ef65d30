package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"folha/internal/auth"
	"folha/internal/transport/http/api"
	"folha/internal/transport/http/middleware"
)

type Handler struct {
	store     *auth.Store
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(pool *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{store: auth.NewStore(pool), jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_credentials", "email and password are required", requestID)
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if errors.Is(err, auth.ErrUserNotFound) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to authenticate", requestID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, auth.Claims{UserID: user.ID, Email: user.Email}, h.tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to issue token", requestID)
		return
	}
	api.Success(w, loginResponse{Token: token, ExpiresAt: time.Now().Add(h.tokenTTL)}, requestID)
}
