package service

import (
	"context"
	"fmt"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// ProductService implements catalog CRUD on top of the product repository.
type ProductService struct {
	repo ports.ProductRepository
}

func NewProductService(repo ports.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds a catalog entry owned by the authenticated user.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive number", domain.ErrInvalidInput)
	}

	ownerID := in.OwnerID
	return s.repo.Create(ctx, &domain.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		UserID:      &ownerID,
	})
}

func (s *ProductService) Update(ctx context.Context, id int, in ports.UpdateProductInput) (*domain.Product, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if in.Price != nil && *in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive number", domain.ErrInvalidInput)
	}

	return s.repo.Update(ctx, id, ports.ProductUpdate{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	})
}

func (s *ProductService) Delete(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.Delete(ctx, id)
}
