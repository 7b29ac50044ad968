// Package billing defines the port to the external billing system that owns
// customer master data and issues invoices.
package billing

import (
	"context"
	"time"
)

// CustomerRecord is a customer as the billing system reports it.
type CustomerRecord struct {
	AccountCode     string `json:"account_code"`
	Name            string `json:"name"`
	ContactPerson   string `json:"contact_person"`
	Telephone       string `json:"telephone"`
	Email           string `json:"email"`
	PhysicalAddress string `json:"physical_address"`
}

// InvoiceLine is one stock line on a billing invoice.
type InvoiceLine struct {
	ItemCode string `json:"item_code"`
	Quantity int    `json:"quantity"`
}

// Invoice is a billing invoice with its lines.
type Invoice struct {
	Number      string        `json:"number"`
	Date        string        `json:"date"` // YYYY-MM-DD
	AccountCode string        `json:"account_code"`
	Lines       []InvoiceLine `json:"lines"`
}

// Item is a stock item from the cylinder category.
type Item struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Client is the billing system collaborator. Lookups of unknown records
// return apperrors.ErrNotFound.
type Client interface {
	GetCustomer(ctx context.Context, accountCode string) (*CustomerRecord, error)
	GetInvoice(ctx context.Context, number string) (*Invoice, error)
	// GetInvoicesInRange lists invoices dated within [start, end]; an empty accountCode means every customer.
	GetInvoicesInRange(ctx context.Context, start, end time.Time, accountCode string) ([]Invoice, error)
	ListCylinderItems(ctx context.Context) ([]Item, error)
}
