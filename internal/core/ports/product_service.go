package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

type CreateProductInput struct {
	Name        string
	Price       float64
	Description *string
	ImageURL    *string
	OwnerID     int
}

// UpdateProductInput carries a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Description *string
	ImageURL    *string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) (*domain.Product, error)
}
