package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/phictor/leadcitymfb-sub000/internal/validate"
)

// respondWithJSON writes payload with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("level=error component=api msg=\"failed to marshal response\" err=%v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondError writes a single-message error body.
func respondError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondValidationErrors writes the 400 body for a rejected payload.
func respondValidationErrors(w http.ResponseWriter, errs []validate.FieldError) {
	respondWithJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"errors": errs,
	})
}
