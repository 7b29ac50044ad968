package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
)

var accountNumberPattern = regexp.MustCompile(`^\d{6}$`)

// Customer is a billing-system account that receives and returns cylinders.
type Customer struct {
	AccountNumber string `json:"accountNumber"` // Six digit, zero padded
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// CustomerSummary pairs an active customer with their current holdings.
type CustomerSummary struct {
	Customer
	TotalHoldings int `json:"totalHoldings"`
}

// CustomerDetails is the customer card: holdings, last activity and the most recent documents.
type CustomerDetails struct {
	Customer
	TotalHoldings      int        `json:"totalHoldings"`
	LastTransaction    *time.Time `json:"lastTransaction,omitempty"`
	RecentTransactions []Document `json:"recentTransactions"`
}

// NormalizeAccountNumber trims surrounding whitespace from a user supplied account number.
func NormalizeAccountNumber(accountNumber string) string {
	return strings.TrimSpace(accountNumber)
}

// ValidateAccountNumber checks the six digit account code format.
func ValidateAccountNumber(accountNumber string) error {
	if !accountNumberPattern.MatchString(accountNumber) {
		return apperrors.NewFieldError(apperrors.ErrInvalidFormat, "accountNumber", accountNumber, "account number must be exactly 6 digits")
	}
	return nil
}
