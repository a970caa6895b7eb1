/**
 * @description
 * Lead intake: the one place a public form submission becomes a stored
 * record. Each successful write also publishes a lead.* event so the
 * notification pipeline can alert staff about new applications; a broken
 * message broker must never cost the bank a lead, so publish failures are
 * logged and swallowed.
 */

package app

import (
	"context"
	"log"
	"time"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

// Routing keys for lead events on the site topic exchange.
const (
	RouteAccountApplicationCreated = "lead.account_application.created"
	RouteLoanApplicationCreated    = "lead.loan_application.created"
	RouteContactMessageCreated     = "lead.contact_message.created"
)

// Publisher publishes lead events. pkg/rabbitmq satisfies it; a nil
// publisher disables events entirely.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body any) error
}

// leadStore is the slice of the storage facade lead intake needs.
type leadStore interface {
	CreateAccountApplication(ctx context.Context, in domain.AccountApplicationInsert) (*domain.AccountApplication, error)
	CreateLoanApplication(ctx context.Context, in domain.LoanApplicationInsert) (*domain.LoanApplication, error)
	CreateContactMessage(ctx context.Context, in domain.ContactMessageInsert) (*domain.ContactMessage, error)
}

// LeadEvent is the payload published for every stored lead.
type LeadEvent struct {
	Kind       string    `json:"kind"`
	LeadID     int64     `json:"lead_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}

// LeadService persists validated lead submissions and emits events.
type LeadService struct {
	store    leadStore
	producer Publisher
	exchange string
}

// NewLeadService wires lead intake. producer may be nil.
func NewLeadService(s leadStore, producer Publisher, exchange string) *LeadService {
	return &LeadService{store: s, producer: producer, exchange: exchange}
}

// SubmitAccountApplication stores an account-opening request.
func (s *LeadService) SubmitAccountApplication(ctx context.Context, in domain.AccountApplicationInsert) (*domain.AccountApplication, error) {
	app, err := s.store.CreateAccountApplication(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, RouteAccountApplicationCreated, LeadEvent{
		Kind:       "account_application",
		LeadID:     app.ID,
		Name:       app.FirstName + " " + app.LastName,
		Email:      app.Email,
		ReceivedAt: app.CreatedAt,
	})
	return app, nil
}

// SubmitLoanApplication stores a loan request.
func (s *LeadService) SubmitLoanApplication(ctx context.Context, in domain.LoanApplicationInsert) (*domain.LoanApplication, error) {
	loan, err := s.store.CreateLoanApplication(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, RouteLoanApplicationCreated, LeadEvent{
		Kind:       "loan_application",
		LeadID:     loan.ID,
		Name:       loan.FirstName + " " + loan.LastName,
		Email:      loan.Email,
		ReceivedAt: loan.CreatedAt,
	})
	return loan, nil
}

// SubmitContactMessage stores a contact-form message.
func (s *LeadService) SubmitContactMessage(ctx context.Context, in domain.ContactMessageInsert) (*domain.ContactMessage, error) {
	msg, err := s.store.CreateContactMessage(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, RouteContactMessageCreated, LeadEvent{
		Kind:       "contact_message",
		LeadID:     msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		ReceivedAt: msg.CreatedAt,
	})
	return msg, nil
}

func (s *LeadService) publish(ctx context.Context, routingKey string, event LeadEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, s.exchange, routingKey, event); err != nil {
		log.Printf("level=error component=leads msg=\"failed to publish lead event\" routing_key=%s lead_id=%d err=%v", routingKey, event.LeadID, err)
	}
}
