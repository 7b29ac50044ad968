package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
)

// DocumentType is the closed set of document kinds. Each kind owns its number
// prefix, its position when documents share a date, and its movement rule.
type DocumentType interface {
	Prefix() string
	Label() string
	// ValidateMovements checks a complete movement set for a document of this type.
	ValidateMovements(movements []CylinderMovement) error
	sortRank() int
}

type invoice struct{}

type returnSlip struct{}

var (
	// Invoice (IN) may carry received and returned cylinders.
	Invoice DocumentType = invoice{}
	// ReturnSlip (NR) only records empty cylinders coming back.
	ReturnSlip DocumentType = returnSlip{}
)

// DocumentTypes lists every document type in ledger order.
var DocumentTypes = []DocumentType{Invoice, ReturnSlip}

func (invoice) Prefix() string { return "IN" }
func (invoice) Label() string  { return "Tax Invoice" }
func (invoice) sortRank() int  { return 0 }

func (invoice) ValidateMovements(movements []CylinderMovement) error {
	if err := validateQuantities(movements); err != nil {
		return err
	}
	if len(movements) == 0 {
		return apperrors.NewFieldError(apperrors.ErrInvalidMovementSet, "movements", "", "Tax Invoice must have either received or returned cylinders")
	}
	return nil
}

func (returnSlip) Prefix() string { return "NR" }
func (returnSlip) Label() string  { return "Empty Return Slip" }
func (returnSlip) sortRank() int  { return 1 }

func (returnSlip) ValidateMovements(movements []CylinderMovement) error {
	if err := validateQuantities(movements); err != nil {
		return err
	}
	for _, m := range movements {
		if m.Direction != EmptyReturn {
			return apperrors.NewFieldError(apperrors.ErrInvalidMovementSet, "movements", string(m.Direction), "Return Slips cannot have received cylinders")
		}
	}
	if len(movements) == 0 {
		return apperrors.NewFieldError(apperrors.ErrInvalidMovementSet, "movements", "", "Return Slips must have returned cylinders")
	}
	return nil
}

func validateQuantities(movements []CylinderMovement) error {
	for _, m := range movements {
		if !m.Direction.IsValid() {
			return apperrors.NewFieldError(apperrors.ErrInvalidMovementSet, "direction", string(m.Direction), "unknown movement direction")
		}
		if m.Quantity <= 0 {
			return apperrors.NewFieldError(apperrors.ErrInvalidMovementSet, "quantity", fmt.Sprint(m.Quantity), "quantity must be positive")
		}
	}
	return nil
}

// ParseDocumentType resolves a two letter prefix (case insensitive) to its DocumentType.
func ParseDocumentType(prefix string) (DocumentType, error) {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	for _, t := range DocumentTypes {
		if t.Prefix() == p {
			return t, nil
		}
	}
	return nil, apperrors.NewFieldError(apperrors.ErrInvalidFormat, "documentType", prefix, "document type must be IN or NR")
}

// MustDocumentType is ParseDocumentType for values already validated by the store.
func MustDocumentType(prefix string) DocumentType {
	t, err := ParseDocumentType(prefix)
	if err != nil {
		panic(err)
	}
	return t
}
