package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-event-checkin/internal/application/auth"
	"github.com/go-event-checkin/internal/domain"
	"github.com/go-event-checkin/internal/pkg/validate"
)

// TokenHandler handles token issuance and introspection.
type TokenHandler struct {
	svc auth.Service
}

func NewTokenHandler(svc auth.Service) *TokenHandler {
	return &TokenHandler{svc: svc}
}

// Login issues a bearer token for a pre-registered mobile number.
func (h *TokenHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeDomainError(w, fmt.Errorf("%v: %w", err, domain.ErrBadRequest))
		return
	}
	result, err := h.svc.Login(r.Context(), req.Mobile)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Verify introspects the presented bearer token and echoes the identity it
// asserts.
func (h *TokenHandler) Verify(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "missing or invalid authorization header")
		return
	}
	mobile, err := h.svc.Verify(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"sub": mobile})
}
