package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// ProductPatch is a merge-patch: nil keeps the stored value, a non-nil
// pointer overwrites it, including with an explicit empty string.
type ProductPatch struct {
	Title       *string
	Author      *string
	Description *string
	CoverURL    *string
	Cloneable   *bool
}

func (p ProductPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Description == nil &&
		p.CoverURL == nil && p.Cloneable == nil
}

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

type UserSummary struct {
	UserID    string
	Name      string
	Surname   string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}

type UserRemoval struct {
	UserID          string
	ProductsDeleted int
	RemovedAt       time.Time
}

type ProductRepository interface {
	// ApplyPatch merges the patch into the stored product and reports
	// whether the product exists (deleted products are patchable).
	ApplyPatch(ctx context.Context, productID string, patch ProductPatch) (Product, bool, error)
	// SetDeleted stamps (non-nil) or clears (nil) the delete timestamp
	// regardless of the current state; the operation is idempotent.
	// Reports whether the product exists.
	SetDeleted(ctx context.Context, productID string, deletedAt *time.Time) (bool, error)
	// RestoreAll clears the delete timestamp on every soft-deleted
	// product and returns how many were restored.
	RestoreAll(ctx context.Context) (int, error)
}

type DirectoryRepository interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
	// DeleteUserCascade soft-deletes every product owned by the user,
	// destroys the user's sessions, and removes the user row. The whole
	// cascade succeeds or fails as a unit. Reports whether the user
	// existed.
	DeleteUserCascade(ctx context.Context, userID string, now time.Time) (UserRemoval, bool, error)
}
