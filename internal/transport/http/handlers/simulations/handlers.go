package simulationshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folha/internal/domain/simulations"
	"folha/internal/transport/http/api"
	"folha/internal/transport/http/middleware"
)

type Handler struct {
	service *simulations.Service
}

func NewHandler(service *simulations.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/simulacoes", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleList)
		r.Post("/", h.handleSave)
		r.Get("/{simulationID}", h.handleGet)
		r.Delete("/{simulationID}", h.handleDelete)
	})
}

type savePayload struct {
	Calculator string          `json:"calculadora"`
	Input      json.RawMessage `json:"entrada"`
	Result     json.RawMessage `json:"resultado"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload savePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(payload.Input) == 0 || len(payload.Result) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "entrada and resultado are required", requestID)
		return
	}

	sim, err := h.service.Save(r.Context(), user.UserID, payload.Calculator, payload.Input, payload.Result)
	if errors.Is(err, simulations.ErrUnknownCalculator) {
		api.Fail(w, http.StatusBadRequest, "unknown_calculator", "calculadora is not recognized", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "simulation_save_failed", "failed to save simulation", requestID)
		return
	}
	api.Created(w, sim, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	sims, err := h.service.List(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "simulation_list_failed", "failed to list simulations", requestID)
		return
	}
	api.Success(w, sims, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	sim, err := h.service.Get(r.Context(), user.UserID, chi.URLParam(r, "simulationID"))
	if errors.Is(err, simulations.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "simulation_not_found", "simulation not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "simulation_get_failed", "failed to load simulation", requestID)
		return
	}
	api.Success(w, sim, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	err := h.service.Delete(r.Context(), user.UserID, chi.URLParam(r, "simulationID"))
	if errors.Is(err, simulations.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "simulation_not_found", "simulation not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "simulation_delete_failed", "failed to delete simulation", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
