package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

// --- MockCustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, accountNumber string) (*domain.Customer, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerSummary(ctx context.Context, accountNumber string) (*domain.CustomerSummary, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerSummary), args.Error(1)
}

func (m *MockCustomerService) ListActiveCustomers(ctx context.Context) ([]domain.CustomerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerSummary), args.Error(1)
}

func (m *MockCustomerService) GetCustomerDetails(ctx context.Context, accountNumber string) (*domain.CustomerDetails, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerDetails), args.Error(1)
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actor domain.Actor) (*domain.Customer, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) DeactivateCustomer(ctx context.Context, accountNumber string, actor domain.Actor) error {
	args := m.Called(ctx, accountNumber, actor)
	return args.Error(0)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- MockDocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) NextDocumentNumber(ctx context.Context, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, docType)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) DocumentNumberExists(ctx context.Context, docType domain.DocumentType, input string) (string, bool, error) {
	args := m.Called(ctx, docType, input)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockDocumentService) GetDocumentByNumber(ctx context.Context, documentNumber string) (*domain.Document, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListCustomerDocuments(ctx context.Context, accountNumber string, params dto.ListDocumentsParams) ([]domain.Document, *string, error) {
	args := m.Called(ctx, accountNumber, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Document), next, args.Error(2)
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, documentID int64, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	args := m.Called(ctx, documentID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, documentID int64, actor domain.Actor) (*domain.DeletedDocumentSummary, error) {
	args := m.Called(ctx, documentID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeletedDocumentSummary), args.Error(1)
}

func (m *MockDocumentService) VoidDocument(ctx context.Context, documentID int64, reason string, actor domain.Actor) (*domain.Document, error) {
	args := m.Called(ctx, documentID, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- MockHoldingsService ---
type MockHoldingsService struct {
	mock.Mock
}

func (m *MockHoldingsService) TotalHoldings(ctx context.Context, accountNumber string) (int, error) {
	args := m.Called(ctx, accountNumber)
	return args.Int(0), args.Error(1)
}

func (m *MockHoldingsService) MonthlySeries(ctx context.Context, accountNumber *string, year int) (*domain.MonthlySeries, error) {
	args := m.Called(ctx, accountNumber, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySeries), args.Error(1)
}

func (m *MockHoldingsService) HoldingsAsOf(ctx context.Context, asOf time.Time) ([]domain.CustomerHolding, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerHolding), args.Error(1)
}

func (m *MockHoldingsService) CurrentHoldingsByCustomer(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

var _ portssvc.HoldingsSvcFacade = (*MockHoldingsService)(nil)

// --- MockSyncService ---
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncCustomer(ctx context.Context, accountNumber string, actor domain.Actor) (*domain.Customer, bool, error) {
	args := m.Called(ctx, accountNumber, actor)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Customer), args.Bool(1), args.Error(2)
}

func (m *MockSyncService) CheckCylinderMovements(ctx context.Context, start, end time.Time) ([]domain.PotentialMovement, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PotentialMovement), args.Error(1)
}

func (m *MockSyncService) SetSyncStatus(ctx context.Context, documentNumber string, status domain.DocumentStatus, actor domain.Actor) (*domain.Document, error) {
	args := m.Called(ctx, documentNumber, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

var _ portssvc.SyncSvcFacade = (*MockSyncService)(nil)

// --- MockAuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", time.Time{}, args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockAuthService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
