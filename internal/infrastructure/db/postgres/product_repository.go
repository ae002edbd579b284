package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// productSelect joins the owning user so catalog reads carry the owner's
// public fields. The join is LEFT: user_id is nulled when the owner is gone.
const productSelect = `
	SELECT p.id, p.name, p.price, p.description, p.image_url, p.user_id,
	       p.created_at, p.updated_at,
	       u.id, u.username, u.role
	FROM products p
	LEFT JOIN users u ON u.id = p.user_id`

// ProductRepository is the pgx-backed implementation of ports.ProductRepository.
type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, price, description, image_url, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		product.Name, product.Price, product.Description, product.ImageURL, product.UserID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	// Fetch back so the response carries the joined owner.
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *ProductRepository) Update(ctx context.Context, id int, upd ports.ProductUpdate) (*domain.Product, error) {
	var updatedID int
	err := r.db.QueryRow(ctx,
		`UPDATE products
		 SET name        = COALESCE($2, name),
		     price       = COALESCE($3, price),
		     description = COALESCE($4, description),
		     image_url   = COALESCE($5, image_url),
		     updated_at  = now()
		 WHERE id = $1
		 RETURNING id`,
		id, upd.Name, upd.Price, upd.Description, upd.ImageURL,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return r.FindByID(ctx, updatedID)
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (*domain.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return product, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p             domain.Product
		ownerID       *int
		ownerUsername *string
		ownerRole     *string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.UserID,
		&p.CreatedAt, &p.UpdatedAt,
		&ownerID, &ownerUsername, &ownerRole,
	)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		p.Owner = &domain.ProductOwner{ID: *ownerID, Username: *ownerUsername, Role: *ownerRole}
	}
	return &p, nil
}
