package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format of calendar months.
const MonthLayout = "2006-01"

// RegisterValidations adds the custom binding tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("accountnumber", func(fl validator.FieldLevel) bool {
		return domain.ValidateAccountNumber(domain.NormalizeAccountNumber(fl.Field().String())) == nil
	})
}

// ParseDate parses a YYYY-MM-DD value, reporting failures against field.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewFieldError(apperrors.ErrInvalidFormat, field, value, "date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

// ParseMonth parses a YYYY-MM value, reporting failures against field.
func ParseMonth(field, value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewFieldError(apperrors.ErrInvalidFormat, field, value, "month must be formatted as YYYY-MM")
	}
	return t, nil
}
