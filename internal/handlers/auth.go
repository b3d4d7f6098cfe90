package handlers

import (
	"net/http"
	"strings"

	"github.com/JuanjoFeller/billwise/internal/middleware"
	"github.com/JuanjoFeller/billwise/internal/models"
	"github.com/JuanjoFeller/billwise/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "displayName is required")
		return
	}

	resp, err := h.auth.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, user)
}
