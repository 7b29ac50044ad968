package models

// Customer is a row of the customers table.
type Customer struct {
	AccountNumber string `db:"account_number"`
	Name          string `db:"name"`
	ContactPerson string `db:"contact_person"`
	PhoneNumber   string `db:"phone_number"`
	Email         string `db:"email"`
	Address       string `db:"address"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}
