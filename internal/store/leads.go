/**
 * @description
 * Repository methods for the three public lead-capture entities: account
 * applications, loan applications and contact messages. All three are
 * create-only from the public site; the admin panel reads the queues
 * newest-first.
 */

package store

import (
	"context"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

func scanAccountApplication(row rowScanner) (*domain.AccountApplication, error) {
	var a domain.AccountApplication
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Phone,
		&a.DateOfBirth,
		&a.Address,
		&a.IDType,
		&a.IDNumber,
		&a.AccountType,
		&a.InitialDeposit,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

const accountApplicationColumns = `
    id, first_name, last_name, email, phone, date_of_birth, address,
    id_type, id_number, account_type, initial_deposit, status, created_at`

// CreateAccountApplication stores a new account-opening request with a
// server-assigned "pending" status.
func (p *Postgres) CreateAccountApplication(ctx context.Context, in domain.AccountApplicationInsert) (*domain.AccountApplication, error) {
	query := `
        INSERT INTO account_applications
            (first_name, last_name, email, phone, date_of_birth, address,
             id_type, id_number, account_type, initial_deposit, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING` + accountApplicationColumns
	row := p.db.QueryRow(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Phone, in.DateOfBirth,
		in.Address, in.IDType, in.IDNumber, in.AccountType,
		in.InitialDeposit.Int64(), domain.ApplicationStatusPending,
	)
	return scanAccountApplication(row)
}

// ListAccountApplications returns all applications, newest first.
func (p *Postgres) ListAccountApplications(ctx context.Context) ([]domain.AccountApplication, error) {
	query := `SELECT` + accountApplicationColumns + ` FROM account_applications ORDER BY created_at DESC, id DESC`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	apps := []domain.AccountApplication{}
	for rows.Next() {
		a, err := scanAccountApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

// GetAccountApplication retrieves one application by id.
func (p *Postgres) GetAccountApplication(ctx context.Context, id int64) (*domain.AccountApplication, error) {
	query := `SELECT` + accountApplicationColumns + ` FROM account_applications WHERE id = $1`
	return scanAccountApplication(p.db.QueryRow(ctx, query, id))
}

func scanLoanApplication(row rowScanner) (*domain.LoanApplication, error) {
	var (
		l               domain.LoanApplication
		collateralType  *string
		collateralValue *int64
	)
	err := row.Scan(
		&l.ID,
		&l.FirstName,
		&l.LastName,
		&l.Email,
		&l.Phone,
		&l.BusinessName,
		&l.BusinessType,
		&l.LoanAmount,
		&l.LoanPurpose,
		&l.MonthlyIncome,
		&l.MonthlyExpenses,
		&collateralType,
		&collateralValue,
		&l.Status,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if collateralType != nil {
		l.CollateralType = *collateralType
	}
	if collateralValue != nil {
		m := domain.NewMoney(*collateralValue)
		l.CollateralValue = &m
	}
	return &l, nil
}

const loanApplicationColumns = `
    id, first_name, last_name, email, phone, business_name, business_type,
    loan_amount, loan_purpose, monthly_income, monthly_expenses,
    collateral_type, collateral_value, status, created_at`

// CreateLoanApplication stores a new loan request with a server-assigned
// "pending" status.
func (p *Postgres) CreateLoanApplication(ctx context.Context, in domain.LoanApplicationInsert) (*domain.LoanApplication, error) {
	query := `
        INSERT INTO loan_applications
            (first_name, last_name, email, phone, business_name, business_type,
             loan_amount, loan_purpose, monthly_income, monthly_expenses,
             collateral_type, collateral_value, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13)
        RETURNING` + loanApplicationColumns
	row := p.db.QueryRow(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Phone, in.BusinessName,
		in.BusinessType, in.LoanAmount.Int64(), in.LoanPurpose,
		in.MonthlyIncome.Int64(), in.MonthlyExpenses.Int64(),
		in.CollateralType, moneyArg(in.CollateralValue),
		domain.ApplicationStatusPending,
	)
	return scanLoanApplication(row)
}

// ListLoanApplications returns all loan requests, newest first.
func (p *Postgres) ListLoanApplications(ctx context.Context) ([]domain.LoanApplication, error) {
	query := `SELECT` + loanApplicationColumns + ` FROM loan_applications ORDER BY created_at DESC, id DESC`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	loans := []domain.LoanApplication{}
	for rows.Next() {
		l, err := scanLoanApplication(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *l)
	}
	return loans, rows.Err()
}

// GetLoanApplication retrieves one loan request by id.
func (p *Postgres) GetLoanApplication(ctx context.Context, id int64) (*domain.LoanApplication, error) {
	query := `SELECT` + loanApplicationColumns + ` FROM loan_applications WHERE id = $1`
	return scanLoanApplication(p.db.QueryRow(ctx, query, id))
}

func scanContactMessage(row rowScanner) (*domain.ContactMessage, error) {
	var (
		m     domain.ContactMessage
		phone *string
	)
	err := row.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Subject, &m.Message, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	if phone != nil {
		m.Phone = *phone
	}
	return &m, nil
}

const contactMessageColumns = ` id, name, email, phone, subject, message, status, created_at`

// CreateContactMessage stores a contact-form submission with status "new".
func (p *Postgres) CreateContactMessage(ctx context.Context, in domain.ContactMessageInsert) (*domain.ContactMessage, error) {
	query := `
        INSERT INTO contact_messages (name, email, phone, subject, message, status)
        VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
        RETURNING` + contactMessageColumns
	row := p.db.QueryRow(ctx, query,
		in.Name, in.Email, in.Phone, in.Subject, in.Message,
		domain.ContactMessageStatusNew,
	)
	return scanContactMessage(row)
}

// ListContactMessages returns all messages, newest first.
func (p *Postgres) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `SELECT` + contactMessageColumns + ` FROM contact_messages ORDER BY created_at DESC, id DESC`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	msgs := []domain.ContactMessage{}
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// GetContactMessage retrieves one message by id.
func (p *Postgres) GetContactMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	query := `SELECT` + contactMessageColumns + ` FROM contact_messages WHERE id = $1`
	return scanContactMessage(p.db.QueryRow(ctx, query, id))
}
