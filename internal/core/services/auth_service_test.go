package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portssvc "github.com/SscSPs/cylinder_holdings/internal/core/ports/services"
	"github.com/SscSPs/cylinder_holdings/internal/core/services"
	"github.com/SscSPs/cylinder_holdings/internal/platform/config"
	"github.com/SscSPs/cylinder_holdings/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cylinder-holdings-test",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.userRepo)
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) storedUser(password string, isAdmin bool) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: "user-7", Username: "depot", PasswordHash: hash, IsAdmin: isAdmin}
}

func (suite *AuthServiceTestSuite) TestLogin() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByUsername", ctx, "depot").Return(suite.storedUser("s3cret", true), nil).Once()

	user, token, expiresAt, err := suite.service.Login(ctx, "depot", "s3cret")

	suite.Require().NoError(err)
	suite.Equal("user-7", user.UserID)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("user-7", claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
	suite.True(claims.IsAdmin)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByUsername", ctx, "depot").Return(suite.storedUser("s3cret", false), nil).Once()

	_, _, _, err := suite.service.Login(ctx, "depot", "guess")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, _, _, err := suite.service.Login(ctx, "ghost", "anything")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestLogin_DeletedUser() {
	ctx := context.Background()
	user := suite.storedUser("s3cret", false)
	deletedAt := time.Now()
	user.DeletedAt = &deletedAt
	suite.userRepo.On("FindUserByUsername", ctx, "depot").Return(user, nil).Once()

	_, _, _, err := suite.service.Login(ctx, "depot", "s3cret")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestEnsureBootstrapAdmin_Creates() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && u.IsAdmin && u.UserID != "" && utils.CheckPasswordHash("bootstrap-pw", u.PasswordHash)
	})).Return(nil).Once()

	suite.NoError(suite.service.EnsureBootstrapAdmin(ctx, "admin", "bootstrap-pw"))
}

func (suite *AuthServiceTestSuite) TestEnsureBootstrapAdmin_AlreadyPresent() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByUsername", ctx, "admin").Return(&domain.User{UserID: "u-1", Username: "admin"}, nil).Once()

	suite.NoError(suite.service.EnsureBootstrapAdmin(ctx, "admin", "bootstrap-pw"))
	suite.userRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestEnsureBootstrapAdmin_NotConfigured() {
	suite.NoError(suite.service.EnsureBootstrapAdmin(context.Background(), "", ""))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
