package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[int]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id int, upd ports.ProductUpdate) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Description != nil {
		p.Description = upd.Description
	}
	if upd.ImageURL != nil {
		p.ImageURL = upd.ImageURL
	}
	out := *p
	return &out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	delete(r.products, id)
	return p, nil
}

func TestProductService_Create_Success(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	desc := "a fine mug"
	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "Mug",
		Price:       9.99,
		Description: &desc,
		OwnerID:     7,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if product.UserID == nil || *product.UserID != 7 {
		t.Fatalf("expected owner id 7, got %v", product.UserID)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "", Price: 1}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 0}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive price, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: -3}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
}

func TestProductService_Update_Validation(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)
	created, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 9.99, OwnerID: 1})

	badPrice := float64(0)
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Price: &badPrice}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero price, got %v", err)
	}
	empty := ""
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateProductInput{Name: &empty}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo)
	created, _ := svc.Create(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 9.99, OwnerID: 1})

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected deleted id %d, got %d", created.ID, deleted.ID)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}
