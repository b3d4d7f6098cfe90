package handlers

import (
	"net/http"

	"github.com/JuanjoFeller/billwise/internal/middleware"
	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/service"
)

// PublicHandler serves the unauthenticated payment routes. Knowing the split
// id is the only access control.
type PublicHandler struct {
	splits *service.SplitService
}

func NewPublicHandler(splits *service.SplitService) *PublicHandler {
	return &PublicHandler{splits: splits}
}

// Get handles GET /api/public/splits/{id}.
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.splits.PublicGet(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Pay handles POST /api/public/splits/{id}/pay.
func (h *PublicHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req models.PayRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	resp, err := h.splits.Pay(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
