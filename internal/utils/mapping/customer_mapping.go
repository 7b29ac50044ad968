package mapping

import (
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		AccountNumber: d.AccountNumber,
		Name:          d.Name,
		ContactPerson: d.ContactPerson,
		PhoneNumber:   d.PhoneNumber,
		Email:         d.Email,
		Address:       d.Address,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		PhoneNumber:   m.PhoneNumber,
		Email:         m.Email,
		Address:       m.Address,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
