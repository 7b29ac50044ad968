package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/core/ports/billing"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
)

// --- MockCustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByAccountNumber(ctx context.Context, accountNumber string) (*domain.Customer, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, activeOnly bool) ([]domain.Customer, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpsertCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, bool, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Customer), args.Bool(1), args.Error(2)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, accountNumber string, userID string, now time.Time) error {
	args := m.Called(ctx, accountNumber, userID, now)
	return args.Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// --- MockDocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentByNumber(ctx context.Context, documentNumber string) (*domain.Document, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) DocumentNumberExists(ctx context.Context, documentNumber string) (bool, error) {
	args := m.Called(ctx, documentNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentRepository) FindLatestDocumentNumber(ctx context.Context, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, docType)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByCustomer(ctx context.Context, accountNumber string, filter domain.DocumentListFilter) ([]domain.Document, *string, error) {
	args := m.Called(ctx, accountNumber, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Document), next, args.Error(2)
}

func (m *MockDocumentRepository) FindDocumentNumbers(ctx context.Context, documentNumbers []string) (map[string]bool, error) {
	args := m.Called(ctx, documentNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockDocumentRepository) CreateDocument(ctx context.Context, doc *domain.Document, audit domain.DocumentAudit) error {
	args := m.Called(ctx, doc, audit)
	return args.Error(0)
}

func (m *MockDocumentRepository) ReplaceDocument(ctx context.Context, doc *domain.Document, audit domain.DocumentAudit) error {
	args := m.Called(ctx, doc, audit)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID int64, audit domain.DocumentAudit) error {
	args := m.Called(ctx, documentID, audit)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDocumentStatus(ctx context.Context, doc domain.Document, audit domain.DocumentAudit) error {
	args := m.Called(ctx, doc, audit)
	return args.Error(0)
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

// --- MockLedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListLedgerEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portsrepo.LedgerReader = (*MockLedgerRepository)(nil)

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- MockBillingClient ---

type MockBillingClient struct {
	mock.Mock
}

func (m *MockBillingClient) GetCustomer(ctx context.Context, accountCode string) (*billing.CustomerRecord, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CustomerRecord), args.Error(1)
}

func (m *MockBillingClient) GetInvoice(ctx context.Context, number string) (*billing.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockBillingClient) GetInvoicesInRange(ctx context.Context, start, end time.Time, accountCode string) ([]billing.Invoice, error) {
	args := m.Called(ctx, start, end, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockBillingClient) ListCylinderItems(ctx context.Context) ([]billing.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Item), args.Error(1)
}

var _ billing.Client = (*MockBillingClient)(nil)

// --- helpers ---

var (
	adminActor    = domain.Actor{UserID: "admin-1", IsAdmin: true}
	operatorActor = domain.Actor{UserID: "operator-1"}
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCustomer(account, name string) *domain.Customer {
	return &domain.Customer{AccountNumber: account, Name: name, IsActive: true}
}

func ledgerEntry(id int64, account, number string, docType domain.DocumentType, date time.Time, dir domain.MovementDirection, qty int) domain.LedgerEntry {
	return domain.LedgerEntry{
		MovementID:        id,
		DocumentID:        id,
		DocumentNumber:    number,
		DocumentType:      docType,
		DocumentDate:      date,
		DocumentCreatedAt: date.Add(time.Duration(id) * time.Minute),
		DocumentStatus:    domain.StatusActive,
		CustomerAccount:   account,
		Direction:         dir,
		Quantity:          qty,
	}
}
