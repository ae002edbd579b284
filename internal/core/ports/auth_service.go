package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
