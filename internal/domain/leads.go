package domain

import "time"

// Status values assigned by the server when a lead record is stored.
// No transition logic exists yet; staff work the queues from the admin panel.
const (
	ApplicationStatusPending = "pending"
	ContactMessageStatusNew  = "new"
)

// AccountApplicationInsert is the subset of an account application a client
// may submit. Server-assigned fields (id, status, createdAt) live on the
// entity only, so a strict decode rejects any attempt to set them.
type AccountApplicationInsert struct {
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Address        string `json:"address" validate:"required,max=500"`
	IDType         string `json:"idType" validate:"required,oneof=national-id passport drivers-license voters-card"`
	IDNumber       string `json:"idNumber" validate:"required,max=50"`
	AccountType    string `json:"accountType" validate:"required,oneof=savings current fixed-deposit target-savings"`
	InitialDeposit Money  `json:"initialDeposit" validate:"required,money"`
}

// AccountApplication is a stored account-opening request.
type AccountApplication struct {
	ID int64 `json:"id"`
	AccountApplicationInsert
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoanApplicationInsert is the client-suppliable subset of a loan application.
type LoanApplicationInsert struct {
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"required,min=7,max=20"`
	BusinessName    string `json:"businessName" validate:"required,max=200"`
	BusinessType    string `json:"businessType" validate:"required,max=100"`
	LoanAmount      Money  `json:"loanAmount" validate:"required,money"`
	LoanPurpose     string `json:"loanPurpose" validate:"required,max=1000"`
	MonthlyIncome   Money  `json:"monthlyIncome" validate:"required,money"`
	MonthlyExpenses Money  `json:"monthlyExpenses" validate:"required,money"`
	CollateralType  string `json:"collateralType,omitempty" validate:"omitempty,max=200"`
	CollateralValue *Money `json:"collateralValue,omitempty" validate:"omitempty,money"`
}

// LoanApplication is a stored loan request.
type LoanApplication struct {
	ID int64 `json:"id"`
	LoanApplicationInsert
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageInsert is the client-suppliable subset of a contact message.
type ContactMessageInsert struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID int64 `json:"id"`
	ContactMessageInsert
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
