/**
 * @description
 * Admin authentication endpoints. Setup provisions the first (and only)
 * administrator; login exchanges credentials for a signed session token.
 * Credential failures are always 401 with one opaque message, never a
 * field-level validation error.
 */

package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/phictor/leadcitymfb-sub000/internal/app"
	"github.com/phictor/leadcitymfb-sub000/internal/domain"
	"github.com/phictor/leadcitymfb-sub000/internal/validate"
)

// HandleAdminSetup creates the first administrator account.
func (h *Handlers) HandleAdminSetup(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w) {
		return
	}
	var req domain.AdminSetupRequest
	if errs := validate.DecodeValid(r, &req); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	user, err := h.auth.Setup(r.Context(), req)
	if err != nil {
		if errors.Is(err, app.ErrAdminExists) {
			respondError(w, http.StatusConflict, "an administrator account already exists")
			return
		}
		log.Printf("level=error component=api msg=\"admin setup failed\" err=%v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"admin":   user,
	})
}

// HandleAdminLogin exchanges credentials for a session token.
func (h *Handlers) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w) {
		return
	}
	var creds domain.AdminCredentials
	if errs := validate.DecodeValid(r, &creds); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	token, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.Printf("level=error component=api msg=\"admin login failed\" err=%v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
	})
}
