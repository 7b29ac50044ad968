package domain_test

import (
	"testing"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mv(dir domain.MovementDirection, qty int) domain.CylinderMovement {
	return domain.CylinderMovement{Direction: dir, Quantity: qty}
}

func TestDocumentType_ValidateMovements(t *testing.T) {
	tests := []struct {
		name      string
		docType   domain.DocumentType
		movements []domain.CylinderMovement
		wantErr   bool
	}{
		{name: "invoice received only", docType: domain.Invoice, movements: []domain.CylinderMovement{mv(domain.Received, 3)}},
		{name: "invoice both directions", docType: domain.Invoice, movements: []domain.CylinderMovement{mv(domain.Received, 3), mv(domain.EmptyReturn, 1)}},
		{name: "invoice returned only", docType: domain.Invoice, movements: []domain.CylinderMovement{mv(domain.EmptyReturn, 1)}},
		{name: "invoice without movements", docType: domain.Invoice, wantErr: true},
		{name: "return slip returned", docType: domain.ReturnSlip, movements: []domain.CylinderMovement{mv(domain.EmptyReturn, 2)}},
		{name: "return slip with received", docType: domain.ReturnSlip, movements: []domain.CylinderMovement{mv(domain.EmptyReturn, 2), mv(domain.Received, 1)}, wantErr: true},
		{name: "return slip without movements", docType: domain.ReturnSlip, wantErr: true},
		{name: "zero quantity", docType: domain.Invoice, movements: []domain.CylinderMovement{mv(domain.Received, 0)}, wantErr: true},
		{name: "unknown direction", docType: domain.Invoice, movements: []domain.CylinderMovement{mv("X", 1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.docType.ValidateMovements(tt.movements)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.ErrorIs(t, err, apperrors.ErrInvalidMovementSet)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseDocumentType(t *testing.T) {
	got, err := domain.ParseDocumentType("nr")
	require.NoError(t, err)
	assert.Equal(t, domain.ReturnSlip, got)

	_, err = domain.ParseDocumentType("XX")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestDocumentStatus_Transitions(t *testing.T) {
	assert.True(t, domain.StatusActive.CanSyncTo(domain.StatusPendingSync))
	assert.True(t, domain.StatusPendingSync.CanSyncTo(domain.StatusSynced))
	assert.True(t, domain.StatusSynced.CanSyncTo(domain.StatusPendingSync))
	assert.False(t, domain.StatusActive.CanSyncTo(domain.StatusSynced))
	assert.False(t, domain.StatusVoid.CanSyncTo(domain.StatusActive))

	assert.True(t, domain.StatusActive.CanVoid())
	assert.False(t, domain.StatusVoid.CanVoid())
	assert.False(t, domain.StatusDraft.CanVoid())
}
