package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phictor/leadcitymfb-sub000/internal/domain"
)

const validAccountApplication = `{
	"firstName": "Ada",
	"lastName": "Obi",
	"email": "ada@example.com",
	"phone": "+2348000000000",
	"dateOfBirth": "1990-01-01",
	"address": "12 Example St",
	"idType": "national-id",
	"idNumber": "A1234567",
	"accountType": "savings",
	"initialDeposit": 1000
}`

func decodeAccountApplication(t *testing.T, body string) (domain.AccountApplicationInsert, []FieldError) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/account-applications", strings.NewReader(body))
	var in domain.AccountApplicationInsert
	return in, DecodeValid(req, &in)
}

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestDecodeValidAcceptsCompleteApplication(t *testing.T) {
	in, errs := decodeAccountApplication(t, validAccountApplication)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if in.FirstName != "Ada" || in.AccountType != "savings" {
		t.Fatalf("unexpected decoded payload: %+v", in)
	}
	if !in.InitialDeposit.Valid() || in.InitialDeposit.Int64() != 1000 {
		t.Fatalf("expected initialDeposit 1000, got %+v", in.InitialDeposit)
	}
}

func TestDecodeValidCoercesStringDeposit(t *testing.T) {
	body := strings.Replace(validAccountApplication, `"initialDeposit": 1000`, `"initialDeposit": "1000"`, 1)
	in, errs := decodeAccountApplication(t, body)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if in.InitialDeposit.Int64() != 1000 {
		t.Fatalf("expected coerced deposit 1000, got %d", in.InitialDeposit.Int64())
	}
}

func TestDecodeValidRejectsNonNumericDeposit(t *testing.T) {
	body := strings.Replace(validAccountApplication, `"initialDeposit": 1000`, `"initialDeposit": "not-a-number"`, 1)
	_, errs := decodeAccountApplication(t, body)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Field != "initialDeposit" {
		t.Fatalf("expected error on initialDeposit, got %q", errs[0].Field)
	}
}

func TestDecodeValidRejectsNegativeDeposit(t *testing.T) {
	body := strings.Replace(validAccountApplication, `"initialDeposit": 1000`, `"initialDeposit": -1`, 1)
	_, errs := decodeAccountApplication(t, body)
	if len(errs) != 1 || errs[0].Field != "initialDeposit" {
		t.Fatalf("expected one error on initialDeposit, got %v", errs)
	}
}

func TestDecodeValidReportsMissingRequiredFields(t *testing.T) {
	_, errs := decodeAccountApplication(t, `{"firstName": "Ada"}`)
	if len(errs) == 0 {
		t.Fatal("expected errors for missing fields")
	}
	got := fieldNames(errs)
	for _, want := range []string{"lastName", "email", "initialDeposit"} {
		found := false
		for _, name := range got {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a %s error, got %v", want, got)
		}
	}
}

func TestDecodeValidRejectsUnknownFields(t *testing.T) {
	body := strings.Replace(validAccountApplication, `"firstName": "Ada",`, `"firstName": "Ada", "status": "approved",`, 1)
	_, errs := decodeAccountApplication(t, body)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Field != "status" {
		t.Fatalf("expected unknown-field error on status, got %q", errs[0].Field)
	}
}

func TestDecodeValidRejectsBadEnumAndDate(t *testing.T) {
	body := strings.Replace(validAccountApplication, `"accountType": "savings"`, `"accountType": "premium"`, 1)
	body = strings.Replace(body, `"dateOfBirth": "1990-01-01"`, `"dateOfBirth": "01/01/1990"`, 1)
	_, errs := decodeAccountApplication(t, body)
	got := fieldNames(errs)
	if len(got) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	for _, want := range []string{"accountType", "dateOfBirth"} {
		found := false
		for _, name := range got {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a %s error, got %v", want, got)
		}
	}
}

func TestDecodeValidRejectsMalformedJSON(t *testing.T) {
	_, errs := decodeAccountApplication(t, `{"firstName":`)
	if len(errs) != 1 || errs[0].Field != "" {
		t.Fatalf("expected a single body-level error, got %v", errs)
	}
}

func TestDecodeValidOptionalCollateral(t *testing.T) {
	body := `{
		"firstName": "Ada", "lastName": "Obi", "email": "ada@example.com",
		"phone": "+2348000000000", "businessName": "Obi Ventures",
		"businessType": "retail", "loanAmount": 500000,
		"loanPurpose": "inventory", "monthlyIncome": "120000",
		"monthlyExpenses": 40000
	}`
	req := httptest.NewRequest("POST", "/api/loan-applications", strings.NewReader(body))
	var in domain.LoanApplicationInsert
	if errs := DecodeValid(req, &in); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if in.CollateralValue != nil {
		t.Fatalf("expected absent collateralValue, got %+v", in.CollateralValue)
	}
	if in.MonthlyIncome.Int64() != 120000 {
		t.Fatalf("expected coerced monthlyIncome, got %d", in.MonthlyIncome.Int64())
	}
}

func TestStructValidatesNewsCategory(t *testing.T) {
	in := domain.NewsArticleInsert{
		Title:       "Branch opening",
		Slug:        "branch-opening",
		Summary:     "A new branch",
		Content:     "Full story",
		Category:    "Lifestyle",
		Author:      "Comms",
		PublishDate: "2026-08-01",
	}
	errs := Struct(in)
	if len(errs) != 1 || errs[0].Field != "category" {
		t.Fatalf("expected one category error, got %v", errs)
	}
}
