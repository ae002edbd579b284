package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
	"github.com/storefront/catalog-api/internal/core/service"
)

type stubProductService struct {
	product *domain.Product
	list    []domain.Product
	err     error

	gotCreate ports.CreateProductInput
}

func (s *stubProductService) List(context.Context) ([]domain.Product, error) {
	return s.list, s.err
}

func (s *stubProductService) Get(context.Context, int) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	s.gotCreate = in
	return s.product, s.err
}

func (s *stubProductService) Update(context.Context, int, ports.UpdateProductInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Delete(context.Context, int) (*domain.Product, error) {
	return s.product, s.err
}

func attachClaims(c echo.Context, role string) {
	c.Set("auth_claims", &service.Claims{UserID: 9, Username: "admin", Role: role})
}

func TestProductHandler_List(t *testing.T) {
	h := NewProductHandler(&stubProductService{list: []domain.Product{{ID: 1, Name: "Mug", Price: 9.99}}})
	c, rec := newTestContext(t, http.MethodGet, "/api/products", "")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 product, got %v", body)
	}
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	h := NewProductHandler(&stubProductService{})
	c, _ := newTestContext(t, http.MethodGet, "/api/products/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	h := NewProductHandler(&stubProductService{err: domain.ErrProductNotFound})
	c, _ := newTestContext(t, http.MethodGet, "/api/products/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create_OwnerFromClaims(t *testing.T) {
	svc := &stubProductService{product: &domain.Product{ID: 1, Name: "Mug", Price: 9.99}}
	h := NewProductHandler(svc)
	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Mug","price":9.99,"description":"a fine mug"}`)
	attachClaims(c, domain.RoleAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotCreate.OwnerID != 9 {
		t.Fatalf("expected owner from claims (9), got %d", svc.gotCreate.OwnerID)
	}
}

func TestProductHandler_Create_NoClaims(t *testing.T) {
	h := NewProductHandler(&stubProductService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/products", `{"name":"Mug","price":9.99}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProductHandler_Create_Validation(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	for _, body := range []string{
		`{"price":9.99}`,
		`{"name":"Mug"}`,
		`{"name":"Mug","price":-1}`,
		`{"name":"Mug","price":9.99,"image_url":"not a url"}`,
	} {
		c, _ := newTestContext(t, http.MethodPost, "/api/products", body)
		attachClaims(c, domain.RoleAdmin)

		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
}
