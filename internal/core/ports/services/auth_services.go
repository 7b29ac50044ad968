package services

import (
	"context"
	"time"

	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
)

// AuthSvcFacade authenticates operators and issues access tokens.
type AuthSvcFacade interface {
	// Login checks credentials and returns the user with a signed access token and its expiry.
	Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error)

	// EnsureBootstrapAdmin creates an admin user when the username is not taken.
	EnsureBootstrapAdmin(ctx context.Context, username, password string) error
}
