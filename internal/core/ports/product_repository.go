package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// ProductUpdate carries a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	ImageURL    *string
}

// ProductRepository defines the persistence contract for catalog entries.
// Implementations return domain.ErrProductNotFound for absent rows.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id int) (*domain.Product, error)
}
