/**
 * @description
 * Public lead-capture endpoints (account applications, loan applications,
 * contact messages) and the staff-only inbox reads. Submissions pass the
 * shared decode/validate pipeline, an optional per-IP rate limit, then
 * the lead service, which stores the record and emits a lead event.
 */

package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// allowForm enforces the per-IP submission budget for one form scope.
// Limiter failures are logged and the request is let through.
func (h *Handlers) allowForm(w http.ResponseWriter, r *http.Request, scope string) bool {
	allowed, retryAfter, err := h.limiter.Allow(r.Context(), scope, clientIP(r), h.formLimitPerMinute, time.Minute)
	if err != nil {
		log.Printf("level=warn component=api msg=\"rate limiter unavailable; allowing request\" scope=%s err=%v", scope, err)
		return true
	}
	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		respondError(w, http.StatusTooManyRequests, "too many submissions, please try again later")
		return false
	}
	return true
}

// HandleCreateAccountApplication accepts a new account-opening request.
func (h *Handlers) HandleCreateAccountApplication(w http.ResponseWriter, r *http.Request) {
	if !h.allowForm(w, r, "account_application") {
		return
	}
	handleCreate(h, w, r, func(r *http.Request, in domain.AccountApplicationInsert) (*domain.AccountApplication, error) {
		return h.leads.SubmitAccountApplication(r.Context(), in)
	})
}

// HandleCreateLoanApplication accepts a new loan request.
func (h *Handlers) HandleCreateLoanApplication(w http.ResponseWriter, r *http.Request) {
	if !h.allowForm(w, r, "loan_application") {
		return
	}
	handleCreate(h, w, r, func(r *http.Request, in domain.LoanApplicationInsert) (*domain.LoanApplication, error) {
		return h.leads.SubmitLoanApplication(r.Context(), in)
	})
}

// HandleCreateContactMessage accepts a contact-form message.
func (h *Handlers) HandleCreateContactMessage(w http.ResponseWriter, r *http.Request) {
	if !h.allowForm(w, r, "contact_message") {
		return
	}
	handleCreate(h, w, r, func(r *http.Request, in domain.ContactMessageInsert) (*domain.ContactMessage, error) {
		return h.leads.SubmitContactMessage(r.Context(), in)
	})
}

// Staff-only inbox reads.

func (h *Handlers) HandleListAccountApplications(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.AccountApplication, error) {
		return h.store.ListAccountApplications(r.Context())
	})
}

func (h *Handlers) HandleGetAccountApplication(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.AccountApplication, error) {
		return h.store.GetAccountApplication(r.Context(), id)
	})
}

func (h *Handlers) HandleListLoanApplications(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.LoanApplication, error) {
		return h.store.ListLoanApplications(r.Context())
	})
}

func (h *Handlers) HandleGetLoanApplication(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.LoanApplication, error) {
		return h.store.GetLoanApplication(r.Context(), id)
	})
}

func (h *Handlers) HandleListContactMessages(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.ContactMessage, error) {
		return h.store.ListContactMessages(r.Context())
	})
}

func (h *Handlers) HandleGetContactMessage(w http.ResponseWriter, r *http.Request) {
	handleGet(h, w, r, func(r *http.Request, id int64) (*domain.ContactMessage, error) {
		return h.store.GetContactMessage(r.Context(), id)
	})
}

// HandleListBranches serves the branch locator. Branches are seeded at
// startup and read-only over HTTP.
func (h *Handlers) HandleListBranches(w http.ResponseWriter, r *http.Request) {
	handleList(h, w, r, func(r *http.Request) ([]domain.Branch, error) {
		return h.store.ListBranches(r.Context())
	})
}
