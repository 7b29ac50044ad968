package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/core/services"
	"github.com/SscSPs/cylinder_holdings/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	customerRepo *MockCustomerRepository
	documentRepo *MockDocumentRepository
	ledgerRepo   *MockLedgerRepository
	service      portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.customerRepo = new(MockCustomerRepository)
	suite.documentRepo = new(MockDocumentRepository)
	suite.ledgerRepo = new(MockLedgerRepository)
	holdings := services.NewHoldingsService(suite.ledgerRepo, suite.customerRepo)
	suite.service = services.NewCustomerService(suite.customerRepo, suite.documentRepo, holdings)
}

func (suite *CustomerServiceTestSuite) TearDownTest() {
	suite.customerRepo.AssertExpectations(suite.T())
	suite.documentRepo.AssertExpectations(suite.T())
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{AccountNumber: " 000123 ", Name: "  Acme Gas ", Email: "ops@acme.test"}
	suite.customerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.AccountNumber == "000123" && c.Name == "Acme Gas" && c.IsActive && c.CreatedBy == operatorActor.UserID
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, operatorActor)

	suite.Require().NoError(err)
	suite.Equal("000123", customer.AccountNumber)
	suite.Equal("ops@acme.test", customer.Email)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Duplicate() {
	ctx := context.Background()
	suite.customerRepo.On("SaveCustomer", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCustomer(ctx, dto.CreateCustomerRequest{AccountNumber: "000123", Name: "Acme Gas"}, operatorActor)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	var fieldErr *apperrors.FieldError
	suite.Require().True(errors.As(err, &fieldErr))
	suite.Equal("accountNumber", fieldErr.Field)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_BadInput() {
	ctx := context.Background()

	_, err := suite.service.CreateCustomer(ctx, dto.CreateCustomerRequest{AccountNumber: "12345", Name: "Short"}, operatorActor)
	suite.ErrorIs(err, apperrors.ErrInvalidFormat)

	_, err = suite.service.CreateCustomer(ctx, dto.CreateCustomerRequest{AccountNumber: "123456", Name: "   "}, operatorActor)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.customerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerSummary() {
	ctx := context.Background()
	account := "000123"
	suite.customerRepo.On("FindCustomerByAccountNumber", ctx, account).Return(testCustomer(account, "Acme Gas"), nil)
	suite.ledgerRepo.On("ListLedgerEntries", ctx, domain.LedgerFilter{CustomerAccount: &account}).Return([]domain.LedgerEntry{
		ledgerEntry(1, account, "IN000001", domain.Invoice, day(2024, time.January, 3), domain.Received, 7),
		ledgerEntry(2, account, "NR000001", domain.ReturnSlip, day(2024, time.January, 9), domain.EmptyReturn, 2),
	}, nil).Once()

	summary, err := suite.service.GetCustomerSummary(ctx, account)

	suite.Require().NoError(err)
	suite.Equal("Acme Gas", summary.Name)
	suite.Equal(5, summary.TotalHoldings)
}

func (suite *CustomerServiceTestSuite) TestGetCustomer_NotFound() {
	ctx := context.Background()
	suite.customerRepo.On("FindCustomerByAccountNumber", ctx, "000999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCustomer(ctx, "000999")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CustomerServiceTestSuite) TestListActiveCustomers() {
	ctx := context.Background()
	suite.customerRepo.On("ListCustomers", ctx, true).Return([]domain.Customer{
		*testCustomer("000123", "Acme Gas"),
		*testCustomer("000456", "Beta Welding"),
	}, nil).Once()
	suite.ledgerRepo.On("ListLedgerEntries", ctx, domain.LedgerFilter{}).Return([]domain.LedgerEntry{
		ledgerEntry(1, "000123", "IN000001", domain.Invoice, day(2024, time.January, 3), domain.Received, 4),
	}, nil).Once()

	summaries, err := suite.service.ListActiveCustomers(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal(4, summaries[0].TotalHoldings)
	suite.Equal("000456", summaries[1].AccountNumber)
	suite.Equal(0, summaries[1].TotalHoldings)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerDetails() {
	ctx := context.Background()
	account := "000123"
	suite.customerRepo.On("FindCustomerByAccountNumber", ctx, account).Return(testCustomer(account, "Acme Gas"), nil)
	suite.ledgerRepo.On("ListLedgerEntries", ctx, domain.LedgerFilter{CustomerAccount: &account}).Return([]domain.LedgerEntry{}, nil).Once()
	recent := []domain.Document{
		{DocumentID: 9, DocumentNumber: "NR000004", DocumentDate: day(2024, time.February, 14)},
		{DocumentID: 8, DocumentNumber: "IN000010", DocumentDate: day(2024, time.February, 1)},
	}
	suite.documentRepo.On("ListDocumentsByCustomer", ctx, account, domain.DocumentListFilter{Limit: 5}).Return(recent, nil, nil).Once()

	details, err := suite.service.GetCustomerDetails(ctx, account)

	suite.Require().NoError(err)
	suite.Equal(0, details.TotalHoldings)
	suite.Len(details.RecentTransactions, 2)
	suite.Require().NotNil(details.LastTransaction)
	suite.Equal(day(2024, time.February, 14), *details.LastTransaction)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerDetails_NoDocuments() {
	ctx := context.Background()
	account := "000123"
	suite.customerRepo.On("FindCustomerByAccountNumber", ctx, account).Return(testCustomer(account, "Acme Gas"), nil)
	suite.ledgerRepo.On("ListLedgerEntries", ctx, domain.LedgerFilter{CustomerAccount: &account}).Return([]domain.LedgerEntry{}, nil).Once()
	suite.documentRepo.On("ListDocumentsByCustomer", ctx, account, domain.DocumentListFilter{Limit: 5}).Return([]domain.Document{}, nil, nil).Once()

	details, err := suite.service.GetCustomerDetails(ctx, account)

	suite.Require().NoError(err)
	suite.Nil(details.LastTransaction)
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer() {
	ctx := context.Background()
	suite.customerRepo.On("FindCustomerByAccountNumber", ctx, "000123").Return(testCustomer("000123", "Acme Gas"), nil).Once()
	suite.customerRepo.On("DeactivateCustomer", ctx, "000123", adminActor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.NoError(suite.service.DeactivateCustomer(ctx, "000123", adminActor))
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_AlreadyInactive() {
	ctx := context.Background()
	inactive := testCustomer("000123", "Acme Gas")
	inactive.IsActive = false
	suite.customerRepo.On("FindCustomerByAccountNumber", ctx, "000123").Return(inactive, nil).Once()

	suite.NoError(suite.service.DeactivateCustomer(ctx, "000123", adminActor))
	suite.customerRepo.AssertNotCalled(suite.T(), "DeactivateCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_RequiresAdmin() {
	err := suite.service.DeactivateCustomer(context.Background(), "000123", operatorActor)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.customerRepo.AssertNotCalled(suite.T(), "FindCustomerByAccountNumber", mock.Anything, mock.Anything)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
