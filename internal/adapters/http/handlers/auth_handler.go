package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

// AuthHandler handles the /api/v1/auth endpoints. The gateway keeps no
// session state; it hands the backing API's token to the client and expects
// it back as a bearer token.
type AuthHandler struct {
	svc ports.AuthService
	loc dto.Localizer
}

// NewAuthHandler creates an AuthHandler. loc may be nil.
func NewAuthHandler(svc ports.AuthService, loc dto.Localizer) *AuthHandler {
	return &AuthHandler{svc: svc, loc: loc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		dto.WriteErrorResponse(w, r, h.loc, err)
		return
	}

	s, err := h.svc.Login(r.Context(), req.ToCredentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, h.loc, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(s))
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		dto.WriteErrorResponse(w, r, h.loc, err)
		return
	}

	s, err := h.svc.Register(r.Context(), req.ToRegistration())
	if err != nil {
		dto.WriteErrorResponse(w, r, h.loc, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSessionResponse(s))
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, h.loc, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /api/v1/auth/user.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, h.loc, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}
