/**
 * @description
 * HTTP handler plumbing shared by every endpoint: the Handlers container,
 * the storage-availability guard for running without a database, error
 * mapping from storage sentinels to status codes, and small generic
 * helpers that give the CRUD entities a uniform decode/validate/store
 * pipeline.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: URL parameter extraction.
 */

package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phictor/leadcitymfb-sub000/internal/app"
	"github.com/phictor/leadcitymfb-sub000/internal/store"
	"github.com/phictor/leadcitymfb-sub000/internal/validate"
)

// Handlers holds the dependencies for the API handlers.
type Handlers struct {
	store              store.Store
	leads              *app.LeadService
	auth               *app.AuthService
	limiter            *app.FormRateLimiter
	formLimitPerMinute int
}

// NewHandlers creates handlers. store may be nil when no database is
// configured; data endpoints then answer 503. limiter may be nil.
func NewHandlers(s store.Store, leads *app.LeadService, auth *app.AuthService, limiter *app.FormRateLimiter, formLimitPerMinute int) *Handlers {
	return &Handlers{
		store:              s,
		leads:              leads,
		auth:               auth,
		limiter:            limiter,
		formLimitPerMinute: formLimitPerMinute,
	}
}

// storeReady reports whether the storage facade is available, answering
// 503 on the spot when it is not.
func (h *Handlers) storeReady(w http.ResponseWriter) bool {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "storage unavailable")
		return false
	}
	return true
}

// storageError maps storage sentinels onto HTTP statuses. Anything
// unexpected is logged and hidden behind a generic 500.
func storageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, store.ErrConflict):
		respondError(w, http.StatusConflict, "record conflicts with an existing record")
	default:
		log.Printf("level=error component=api msg=\"storage operation failed\" err=%v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// pathID parses the {id} URL parameter. A non-numeric id is a client
// error, not a missing record.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// Methods cannot carry type parameters, so the generic CRUD pipeline
// lives in package-level functions taking the Handlers receiver.

func handleCreate[In any, Out any](h *Handlers, w http.ResponseWriter, r *http.Request, create func(*http.Request, In) (*Out, error)) {
	if !h.storeReady(w) {
		return
	}
	var in In
	if errs := validate.DecodeValid(r, &in); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}
	out, err := create(r, in)
	if err != nil {
		storageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, out)
}

func handleList[Out any](h *Handlers, w http.ResponseWriter, r *http.Request, list func(*http.Request) ([]Out, error)) {
	if !h.storeReady(w) {
		return
	}
	items, err := list(r)
	if err != nil {
		storageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func handleGet[Out any](h *Handlers, w http.ResponseWriter, r *http.Request, get func(*http.Request, int64) (*Out, error)) {
	if !h.storeReady(w) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := get(r, id)
	if err != nil {
		storageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, out)
}

func handleUpdate[In any, Out any](h *Handlers, w http.ResponseWriter, r *http.Request, update func(*http.Request, int64, In) (*Out, error)) {
	if !h.storeReady(w) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in In
	if errs := validate.DecodeValid(r, &in); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}
	out, err := update(r, id, in)
	if err != nil {
		storageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, out)
}

func handleDelete(h *Handlers, w http.ResponseWriter, r *http.Request, del func(*http.Request, int64) error) {
	if !h.storeReady(w) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := del(r, id); err != nil {
		storageError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
