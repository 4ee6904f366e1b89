package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "showcase/contexts/moderation-safety/moderation-service/domain/errors"
	"showcase/contexts/moderation-safety/moderation-service/ports"
)

// Service carries out administrative actions against the catalog and the
// user directory. Callers are expected to have been authorized already;
// the service only validates the shape of each request.
type Service struct {
	Products  ports.ProductRepository
	Directory ports.DirectoryRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (s Service) UpdateProduct(ctx context.Context, productID string, patch ports.ProductPatch) (ports.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ports.Product{}, domainerrors.ErrInvalidRequest
	}

	product, found, err := s.Products.ApplyPatch(ctx, productID, patch)
	if err != nil {
		return ports.Product{}, err
	}
	if !found {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}

	s.logger().Info("product updated",
		"event", "moderation_product_updated",
		"module", "moderation-safety/moderation-service",
		"layer", "application",
		"product_id", productID,
	)

	return product, nil
}

func (s Service) SoftDeleteProduct(ctx context.Context, productID string) (time.Time, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return time.Time{}, domainerrors.ErrInvalidRequest
	}

	deletedAt := s.now()
	found, err := s.Products.SetDeleted(ctx, productID, &deletedAt)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, domainerrors.ErrProductNotFound
	}

	s.logger().Info("product soft-deleted",
		"event", "moderation_product_soft_deleted",
		"module", "moderation-safety/moderation-service",
		"layer", "application",
		"product_id", productID,
	)

	return deletedAt, nil
}

func (s Service) RestoreProduct(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domainerrors.ErrInvalidRequest
	}

	found, err := s.Products.SetDeleted(ctx, productID, nil)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrProductNotFound
	}

	s.logger().Info("product restored",
		"event", "moderation_product_restored",
		"module", "moderation-safety/moderation-service",
		"layer", "application",
		"product_id", productID,
	)

	return nil
}

func (s Service) RestoreAllProducts(ctx context.Context) (int, error) {
	restored, err := s.Products.RestoreAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger().Info("all products restored",
		"event", "moderation_products_restored_all",
		"module", "moderation-safety/moderation-service",
		"layer", "application",
		"restored", restored,
	)

	return restored, nil
}

func (s Service) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	return s.Directory.ListUsers(ctx)
}

func (s Service) DeleteUser(ctx context.Context, userID string) (ports.UserRemoval, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ports.UserRemoval{}, domainerrors.ErrInvalidRequest
	}

	removal, found, err := s.Directory.DeleteUserCascade(ctx, userID, s.now())
	if err != nil {
		return ports.UserRemoval{}, err
	}
	if !found {
		return ports.UserRemoval{}, domainerrors.ErrUserNotFound
	}

	s.logger().Info("user deleted",
		"event", "moderation_user_deleted",
		"module", "moderation-safety/moderation-service",
		"layer", "application",
		"user_id", userID,
		"products_deleted", removal.ProductsDeleted,
	)

	return removal, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
