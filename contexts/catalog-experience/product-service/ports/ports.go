package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Product is a catalog card. OwnerID is empty for admin-authored entries.
// LikesCount is derived from the like relation and recomputed on every
// like/unlike; it is never incremented independently.
type Product struct {
	ProductID   string
	Title       string
	Author      string
	Description string
	CoverURL    string
	OwnerID     string
	Cloneable   bool
	LikesCount  int64
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

type CreateProductInput struct {
	Title       string
	Author      string
	Description string
	CoverURL    string
	OwnerID     string
	Cloneable   bool
}

type Repository interface {
	// ListActive returns non-deleted products, newest first.
	ListActive(ctx context.Context) ([]Product, error)
	// GetActive returns ErrProductNotFound for absent or soft-deleted ids.
	GetActive(ctx context.Context, productID string) (Product, error)
	CreateProduct(ctx context.Context, product Product) error
	// Like records the (user, product) pair if absent, recomputes the
	// product's like count from the relation, and returns the fresh count.
	Like(ctx context.Context, userID string, productID string) (int64, error)
	// Unlike removes the pair if present and recomputes identically.
	Unlike(ctx context.Context, userID string, productID string) (int64, error)
}
