package handlers

import (
	"net/http"
	"strconv"

	"github.com/JuanjoFeller/billwise/internal/middleware"
	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/service"
)

// SplitHandler serves the authenticated split management routes.
type SplitHandler struct {
	splits *service.SplitService
}

func NewSplitHandler(splits *service.SplitService) *SplitHandler {
	return &SplitHandler{splits: splits}
}

// Create handles POST /api/splits.
func (h *SplitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSplitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	resp, err := h.splits.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// List handles GET /api/splits.
func (h *SplitHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.splits.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Get handles GET /api/splits/{id}, the owner's tracking view.
func (h *SplitHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.splits.Get(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Toggle handles POST /api/splits/{id}/participants/{index}/toggle.
func (h *SplitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant index must be a number")
		return
	}

	resp, err := h.splits.TogglePaid(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"), index)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
