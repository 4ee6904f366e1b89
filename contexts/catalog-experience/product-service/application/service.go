package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "showcase/contexts/catalog-experience/product-service/domain/errors"
	"showcase/contexts/catalog-experience/product-service/ports"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) ListActive(ctx context.Context) ([]ports.Product, error) {
	return s.Repo.ListActive(ctx)
}

func (s Service) GetActive(ctx context.Context, productID string) (ports.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	return s.Repo.GetActive(ctx, productID)
}

// CreateProduct persists a new card. OwnerID is the acting user for
// self-service creation and empty for admin-authored entries; ownership
// is never a capability check here.
func (s Service) CreateProduct(ctx context.Context, input ports.CreateProductInput) (ports.Product, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return ports.Product{}, domainerrors.ErrTitleRequired
	}

	productID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.Product{}, err
	}
	product := ports.Product{
		ProductID:   productID,
		Title:       input.Title,
		Author:      strings.TrimSpace(input.Author),
		Description: strings.TrimSpace(input.Description),
		CoverURL:    strings.TrimSpace(input.CoverURL),
		OwnerID:     strings.TrimSpace(input.OwnerID),
		Cloneable:   input.Cloneable,
		CreatedAt:   s.now(),
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return ports.Product{}, err
	}

	s.logger().Info("product created",
		"event", "catalog_product_created",
		"module", "catalog-experience/product-service",
		"layer", "application",
		"product_id", product.ProductID,
		"owned", product.OwnerID != "",
	)
	return product, nil
}

// Like is idempotent: repeating it leaves the stored count unchanged.
// The returned count is recomputed from the like relation, so duplicate
// or concurrent calls cannot make the counter drift.
func (s Service) Like(ctx context.Context, userID string, productID string) (int64, error) {
	userID = strings.TrimSpace(userID)
	productID = strings.TrimSpace(productID)
	if userID == "" || productID == "" {
		return 0, domainerrors.ErrInvalidRequest
	}
	return s.Repo.Like(ctx, userID, productID)
}

func (s Service) Unlike(ctx context.Context, userID string, productID string) (int64, error) {
	userID = strings.TrimSpace(userID)
	productID = strings.TrimSpace(productID)
	if userID == "" || productID == "" {
		return 0, domainerrors.ErrInvalidRequest
	}
	return s.Repo.Unlike(ctx, userID, productID)
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
