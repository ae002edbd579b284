package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
// Password, when set, is hashed by the service before it reaches the store.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) (*domain.User, error)
}
