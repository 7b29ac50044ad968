package dto

import (
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer by hand.
type CreateCustomerRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required,accountnumber"`
	Name          string `json:"name" binding:"required,max=200"`
	ContactPerson string `json:"contactPerson" binding:"max=100"`
	PhoneNumber   string `json:"phoneNumber" binding:"max=20"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	AccountNumber string    `json:"accountNumber"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	PhoneNumber   string    `json:"phoneNumber"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// CustomerHoldingsResponse is a customer with its current holdings.
type CustomerHoldingsResponse struct {
	CustomerResponse
	TotalHoldings int `json:"totalHoldings"`
}

// ListCustomersResponse wraps the active customer list.
type ListCustomersResponse struct {
	Customers []CustomerHoldingsResponse `json:"customers"`
}

// CustomerDetailsResponse is the customer card with recent activity.
type CustomerDetailsResponse struct {
	CustomerResponse
	TotalHoldings      int                `json:"totalHoldings"`
	LastTransaction    *string            `json:"lastTransaction,omitempty"`
	RecentTransactions []DocumentResponse `json:"recentTransactions"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		AccountNumber: c.AccountNumber,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		PhoneNumber:   c.PhoneNumber,
		Email:         c.Email,
		Address:       c.Address,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCustomersResponse converts customer summaries to ListCustomersResponse.
func ToListCustomersResponse(summaries []domain.CustomerSummary) ListCustomersResponse {
	resp := ListCustomersResponse{Customers: make([]CustomerHoldingsResponse, len(summaries))}
	for i := range summaries {
		resp.Customers[i] = CustomerHoldingsResponse{
			CustomerResponse: ToCustomerResponse(&summaries[i].Customer),
			TotalHoldings:    summaries[i].TotalHoldings,
		}
	}
	return resp
}

// ToCustomerDetailsResponse converts domain.CustomerDetails to its DTO.
func ToCustomerDetailsResponse(d *domain.CustomerDetails) CustomerDetailsResponse {
	resp := CustomerDetailsResponse{
		CustomerResponse:   ToCustomerResponse(&d.Customer),
		TotalHoldings:      d.TotalHoldings,
		RecentTransactions: ToDocumentResponses(d.RecentTransactions),
	}
	if d.LastTransaction != nil {
		s := d.LastTransaction.Format(DateLayout)
		resp.LastTransaction = &s
	}
	return resp
}
