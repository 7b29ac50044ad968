package domain

import "time"

// PotentialMovement is a cylinder line on a billing invoice that has no
// matching document in the ledger yet.
type PotentialMovement struct {
	InvoiceNumber   string    `json:"invoiceNumber"`
	InvoiceDate     time.Time `json:"invoiceDate"`
	CustomerAccount string    `json:"customerAccount"`
	ItemCode        string    `json:"itemCode"`
	Description     string    `json:"description"`
	Quantity        int       `json:"quantity"`
}
