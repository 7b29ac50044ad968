package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDocumentNumber(t *testing.T) {
	tests := []struct {
		name    string
		docType domain.DocumentType
		latest  string
		want    string
		wantErr error
	}{
		{name: "increments latest invoice", docType: domain.Invoice, latest: "IN000007", want: "IN000008"},
		{name: "first return slip", docType: domain.ReturnSlip, latest: "", want: "NR000001"},
		{name: "carries into next digit", docType: domain.Invoice, latest: "IN000099", want: "IN000100"},
		{name: "series exhausted", docType: domain.Invoice, latest: "IN999999", wantErr: apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextDocumentNumber(tt.docType, tt.latest)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDocumentNumber(t *testing.T) {
	tests := []struct {
		name    string
		docType domain.DocumentType
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare number gets prefix", docType: domain.Invoice, input: "42", want: "IN000042"},
		{name: "lower case prefix with separators", docType: domain.Invoice, input: " in-00 42 ", want: "IN000042"},
		{name: "already canonical", docType: domain.ReturnSlip, input: "NR000001", want: "NR000001"},
		{name: "padded beyond width", docType: domain.ReturnSlip, input: "0000012", want: "NR000012"},
		{name: "wrong prefix", docType: domain.ReturnSlip, input: "IN000001", wantErr: true},
		{name: "letters after prefix", docType: domain.Invoice, input: "IN12A", wantErr: true},
		{name: "prefix only", docType: domain.Invoice, input: "IN", wantErr: true},
		{name: "only punctuation", docType: domain.Invoice, input: "--/", wantErr: true},
		{name: "too many digits", docType: domain.Invoice, input: "1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeDocumentNumber(tt.docType, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
				var fe *apperrors.FieldError
				assert.True(t, errors.As(err, &fe))
				assert.Equal(t, "documentNumber", fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAccountNumber(t *testing.T) {
	assert.NoError(t, domain.ValidateAccountNumber("000123"))
	for _, bad := range []string{"", "12345", "1234567", "12a456", " 12345"} {
		err := domain.ValidateAccountNumber(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, bad)
	}
}
