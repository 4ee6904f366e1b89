package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"showcase/contexts/moderation-safety/moderation-service/ports"
)

// Repository runs moderation actions against the shared catalog and user
// tables. It owns no tables of its own; migrations live with the identity
// and product adapters.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

var (
	_ ports.ProductRepository   = (*Repository)(nil)
	_ ports.DirectoryRepository = (*Repository)(nil)
)

func (r *Repository) ApplyPatch(ctx context.Context, productID string, patch ports.ProductPatch) (ports.Product, bool, error) {
	var updated productModel
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current productModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).
			First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		changes := map[string]any{}
		if patch.Title != nil {
			changes["title"] = *patch.Title
		}
		if patch.Author != nil {
			changes["author"] = *patch.Author
		}
		if patch.Description != nil {
			changes["description"] = *patch.Description
		}
		if patch.CoverURL != nil {
			changes["cover_url"] = *patch.CoverURL
		}
		if patch.Cloneable != nil {
			changes["cloneable"] = *patch.Cloneable
		}
		if len(changes) > 0 {
			if err := tx.Model(&productModel{}).
				Where("product_id = ?", productID).
				Updates(changes).Error; err != nil {
				return err
			}
		}

		return tx.Where("product_id = ?", productID).First(&updated).Error
	})
	if err != nil {
		return ports.Product{}, false, err
	}
	if !found {
		return ports.Product{}, false, nil
	}
	return toPort(updated), true, nil
}

func (r *Repository) SetDeleted(ctx context.Context, productID string, deletedAt *time.Time) (bool, error) {
	value := normalizeOptionalTime(deletedAt)
	result := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("product_id = ?", productID).
		Update("deleted_at", value)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) RestoreAll(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]ports.UserSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, ports.UserSummary{
			UserID:    row.UserID,
			Name:      row.Name,
			Surname:   row.Surname,
			Email:     row.Email,
			IsAdmin:   row.IsAdmin,
			CreatedAt: row.CreatedAt,
		})
	}
	return summaries, nil
}

func (r *Repository) DeleteUserCascade(ctx context.Context, userID string, now time.Time) (ports.UserRemoval, bool, error) {
	removal := ports.UserRemoval{UserID: userID, RemovedAt: now.UTC()}
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user userModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		result := tx.Model(&productModel{}).
			Where("owner_id = ? AND deleted_at IS NULL", userID).
			Update("deleted_at", now.UTC())
		if result.Error != nil {
			return result.Error
		}
		removal.ProductsDeleted = int(result.RowsAffected)

		if err := tx.Where("user_id = ?", userID).Delete(&sessionModel{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&userModel{}).Error
	})
	if err != nil {
		return ports.UserRemoval{}, false, err
	}
	if !found {
		return ports.UserRemoval{}, false, nil
	}
	return removal, true, nil
}

func toPort(model productModel) ports.Product {
	ownerID := ""
	if model.OwnerID != nil {
		ownerID = *model.OwnerID
	}
	return ports.Product{
		ProductID:   model.ProductID,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		CoverURL:    model.CoverURL,
		OwnerID:     ownerID,
		Cloneable:   model.Cloneable,
		LikesCount:  model.LikesCount,
		CreatedAt:   model.CreatedAt,
		DeletedAt:   model.DeletedAt,
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	normalized := value.UTC()
	return &normalized
}

// SystemClock reads the wall clock for moderation timestamps.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
