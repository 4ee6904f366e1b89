package memory

import (
	"context"
	"time"

	productmemory "showcase/contexts/catalog-experience/product-service/adapters/memory"
	productports "showcase/contexts/catalog-experience/product-service/ports"
	identitymemory "showcase/contexts/identity-access/identity-service/adapters/memory"
	"showcase/contexts/moderation-safety/moderation-service/ports"
)

// Store adapts the in-memory identity and product stores for moderation,
// so administrative changes are visible through the public catalog and
// the public catalog's likes stay consistent after a cascade.
type Store struct {
	products *productmemory.Store
	users    *identitymemory.Store
}

func NewStore(products *productmemory.Store, users *identitymemory.Store) *Store {
	return &Store{products: products, users: users}
}

var (
	_ ports.ProductRepository   = (*Store)(nil)
	_ ports.DirectoryRepository = (*Store)(nil)
)

func (s *Store) ApplyPatch(ctx context.Context, productID string, patch ports.ProductPatch) (ports.Product, bool, error) {
	product, found, err := s.products.ApplyPatch(
		ctx,
		productID,
		patch.Title,
		patch.Author,
		patch.Description,
		patch.CoverURL,
		patch.Cloneable,
	)
	if err != nil || !found {
		return ports.Product{}, found, err
	}
	return toModerationProduct(product), true, nil
}

func (s *Store) SetDeleted(ctx context.Context, productID string, deletedAt *time.Time) (bool, error) {
	return s.products.SetDeleted(ctx, productID, deletedAt)
}

func (s *Store) RestoreAll(ctx context.Context) (int, error) {
	return s.products.RestoreAll(ctx)
}

func (s *Store) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, ports.UserSummary{
			UserID:    user.UserID,
			Name:      user.Name,
			Surname:   user.Surname,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *Store) DeleteUserCascade(ctx context.Context, userID string, now time.Time) (ports.UserRemoval, bool, error) {
	if _, found, err := s.users.GetUserByID(ctx, userID); err != nil || !found {
		return ports.UserRemoval{}, false, err
	}

	deleted, err := s.products.SoftDeleteByOwner(ctx, userID, now)
	if err != nil {
		return ports.UserRemoval{}, false, err
	}

	if _, err := s.users.RemoveUser(ctx, userID); err != nil {
		return ports.UserRemoval{}, false, err
	}

	return ports.UserRemoval{
		UserID:          userID,
		ProductsDeleted: deleted,
		RemovedAt:       now,
	}, true, nil
}

func toModerationProduct(product productports.Product) ports.Product {
	return ports.Product{
		ProductID:   product.ProductID,
		Title:       product.Title,
		Author:      product.Author,
		Description: product.Description,
		CoverURL:    product.CoverURL,
		OwnerID:     product.OwnerID,
		Cloneable:   product.Cloneable,
		LikesCount:  product.LikesCount,
		CreatedAt:   product.CreatedAt,
		DeletedAt:   product.DeletedAt,
	}
}
