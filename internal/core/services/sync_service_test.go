package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	"github.com/SscSPs/cylinder_holdings/internal/core/ports/billing"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/core/services"
)

type SyncServiceTestSuite struct {
	suite.Suite
	billingClient *MockBillingClient
	customerRepo  *MockCustomerRepository
	documentRepo  *MockDocumentRepository
	service       portssvc.SyncSvcFacade
}

func (suite *SyncServiceTestSuite) SetupTest() {
	suite.billingClient = new(MockBillingClient)
	suite.customerRepo = new(MockCustomerRepository)
	suite.documentRepo = new(MockDocumentRepository)
	suite.service = services.NewSyncService(suite.billingClient, suite.customerRepo, suite.documentRepo)
}

func (suite *SyncServiceTestSuite) TearDownTest() {
	suite.billingClient.AssertExpectations(suite.T())
	suite.customerRepo.AssertExpectations(suite.T())
	suite.documentRepo.AssertExpectations(suite.T())
}

func (suite *SyncServiceTestSuite) TestSyncCustomer() {
	ctx := context.Background()
	suite.billingClient.On("GetCustomer", ctx, "000123").Return(&billing.CustomerRecord{
		AccountCode: "000123",
		Name:        " Acme Gas ",
		Telephone:   "555-0100",
	}, nil).Once()
	stored := testCustomer("000123", "Acme Gas")
	suite.customerRepo.On("UpsertCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.AccountNumber == "000123" && c.Name == "Acme Gas" && c.PhoneNumber == "555-0100"
	})).Return(stored, true, nil).Once()

	customer, created, err := suite.service.SyncCustomer(ctx, "000123", adminActor)

	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(stored, customer)
}

func (suite *SyncServiceTestSuite) TestSyncCustomer_UnknownInBilling() {
	ctx := context.Background()
	suite.billingClient.On("GetCustomer", ctx, "000123").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.SyncCustomer(ctx, "000123", adminActor)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.customerRepo.AssertNotCalled(suite.T(), "UpsertCustomer", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSyncCustomer_RequiresAdmin() {
	_, _, err := suite.service.SyncCustomer(context.Background(), "000123", operatorActor)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SyncServiceTestSuite) TestBillingNotConfigured() {
	svc := services.NewSyncService(nil, suite.customerRepo, suite.documentRepo)

	_, _, err := svc.SyncCustomer(context.Background(), "000123", adminActor)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusServiceUnavailable, appErr.Code)

	_, err = svc.CheckCylinderMovements(context.Background(), day(2024, time.January, 1), day(2024, time.January, 31))
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusServiceUnavailable, appErr.Code)
}

func (suite *SyncServiceTestSuite) TestCheckCylinderMovements() {
	ctx := context.Background()
	start, end := day(2024, time.January, 1), day(2024, time.January, 31)
	suite.billingClient.On("ListCylinderItems", ctx).Return([]billing.Item{
		{Code: "CYL-O2", Description: "Oxygen cylinder"},
		{Code: "CYL-AR", Description: "Argon cylinder"},
	}, nil).Once()
	suite.billingClient.On("GetInvoicesInRange", ctx, start, end, "").Return([]billing.Invoice{
		{Number: "IN000001", Date: "2024-01-04", AccountCode: "000123", Lines: []billing.InvoiceLine{{ItemCode: "CYL-O2", Quantity: 3}}},
		{Number: "IN000002", Date: "2024-01-09", AccountCode: "000456", Lines: []billing.InvoiceLine{
			{ItemCode: "REG-01", Quantity: 1},
			{ItemCode: "CYL-AR", Quantity: 2},
		}},
	}, nil).Once()
	suite.documentRepo.On("FindDocumentNumbers", ctx, []string{"IN000001", "IN000002"}).
		Return(map[string]bool{"IN000001": true}, nil).Once()

	potential, err := suite.service.CheckCylinderMovements(ctx, start, end)

	suite.Require().NoError(err)
	suite.Equal([]domain.PotentialMovement{{
		InvoiceNumber:   "IN000002",
		InvoiceDate:     day(2024, time.January, 9),
		CustomerAccount: "000456",
		ItemCode:        "CYL-AR",
		Description:     "Argon cylinder",
		Quantity:        2,
	}}, potential)
}

func (suite *SyncServiceTestSuite) TestCheckCylinderMovements_NoInvoices() {
	ctx := context.Background()
	start, end := day(2024, time.January, 1), day(2024, time.January, 31)
	suite.billingClient.On("ListCylinderItems", ctx).Return([]billing.Item{}, nil).Once()
	suite.billingClient.On("GetInvoicesInRange", ctx, start, end, "").Return([]billing.Invoice{}, nil).Once()

	potential, err := suite.service.CheckCylinderMovements(ctx, start, end)

	suite.Require().NoError(err)
	suite.Empty(potential)
	suite.documentRepo.AssertNotCalled(suite.T(), "FindDocumentNumbers", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestCheckCylinderMovements_EndBeforeStart() {
	_, err := suite.service.CheckCylinderMovements(context.Background(), day(2024, time.February, 1), day(2024, time.January, 1))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.billingClient.AssertNotCalled(suite.T(), "ListCylinderItems", mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSetSyncStatus() {
	ctx := context.Background()
	doc := &domain.Document{DocumentID: 11, DocumentNumber: "IN000011", Type: domain.Invoice, Status: domain.StatusActive}
	suite.documentRepo.On("FindDocumentByNumber", ctx, "IN000011").Return(doc, nil).Once()
	suite.documentRepo.On("UpdateDocumentStatus", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.Status == domain.StatusPendingSync && d.LastUpdatedBy == adminActor.UserID
	}), mock.MatchedBy(func(a domain.DocumentAudit) bool {
		return a.Action == domain.AuditSync && a.DocumentID != nil && *a.DocumentID == 11
	})).Return(nil).Once()

	updated, err := suite.service.SetSyncStatus(ctx, " in000011 ", domain.StatusPendingSync, adminActor)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingSync, updated.Status)
}

func (suite *SyncServiceTestSuite) TestSetSyncStatus_SameStatus() {
	ctx := context.Background()
	doc := &domain.Document{DocumentID: 11, DocumentNumber: "IN000011", Status: domain.StatusSynced}
	suite.documentRepo.On("FindDocumentByNumber", ctx, "IN000011").Return(doc, nil).Once()

	updated, err := suite.service.SetSyncStatus(ctx, "IN000011", domain.StatusSynced, adminActor)

	suite.Require().NoError(err)
	suite.Equal(doc, updated)
	suite.documentRepo.AssertNotCalled(suite.T(), "UpdateDocumentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSetSyncStatus_IllegalTransition() {
	ctx := context.Background()
	doc := &domain.Document{DocumentID: 11, DocumentNumber: "IN000011", Status: domain.StatusActive}
	suite.documentRepo.On("FindDocumentByNumber", ctx, "IN000011").Return(doc, nil).Once()

	_, err := suite.service.SetSyncStatus(ctx, "IN000011", domain.StatusSynced, adminActor)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *SyncServiceTestSuite) TestSetSyncStatus_RejectsVoidTarget() {
	_, err := suite.service.SetSyncStatus(context.Background(), "IN000011", domain.StatusVoid, adminActor)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.documentRepo.AssertNotCalled(suite.T(), "FindDocumentByNumber", mock.Anything, mock.Anything)
}

func (suite *SyncServiceTestSuite) TestSetSyncStatus_RequiresAdmin() {
	_, err := suite.service.SetSyncStatus(context.Background(), "IN000011", domain.StatusPendingSync, operatorActor)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
