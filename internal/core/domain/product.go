package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// ProductOwner is the slice of the owning user exposed on catalog reads.
type ProductOwner struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Product is a catalog entry. Description and ImageURL are nullable columns;
// Owner is resolved by joining the users table and is nil when the owning
// account has been deleted (user_id is set NULL on owner deletion).
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"image_url"`
	UserID      *int          `json:"user_id"`
	Owner       *ProductOwner `json:"user,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
