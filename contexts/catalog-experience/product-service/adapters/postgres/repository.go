package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "showcase/contexts/catalog-experience/product-service/domain/errors"
	"showcase/contexts/catalog-experience/product-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the products and likes tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&productModel{}, &likeModel{})
}

func (r *Repository) ListActive(ctx context.Context) ([]ports.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.Product, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

func (r *Repository) GetActive(ctx context.Context, productID string) (ports.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND deleted_at IS NULL", strings.TrimSpace(productID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, domainerrors.ErrProductNotFound
		}
		return ports.Product{}, err
	}
	return row.toPort(), nil
}

func (r *Repository) CreateProduct(ctx context.Context, product ports.Product) error {
	row := productModelFromPort(product)
	return r.db.WithContext(ctx).Create(&row).Error
}

// Like inserts the pair if absent and recomputes the stored count from
// the like relation inside one transaction, holding a row lock on the
// product so concurrent like/unlike pairs serialize.
func (r *Repository) Like(ctx context.Context, userID string, productID string) (int64, error) {
	return r.mutateLikes(ctx, productID, func(tx *gorm.DB) error {
		row := likeModel{
			UserID:    strings.TrimSpace(userID),
			ProductID: strings.TrimSpace(productID),
			CreatedAt: time.Now().UTC(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).Create(&row).Error
	})
}

func (r *Repository) Unlike(ctx context.Context, userID string, productID string) (int64, error) {
	return r.mutateLikes(ctx, productID, func(tx *gorm.DB) error {
		return tx.
			Where("user_id = ? AND product_id = ?", strings.TrimSpace(userID), strings.TrimSpace(productID)).
			Delete(&likeModel{}).
			Error
	})
}

func (r *Repository) mutateLikes(ctx context.Context, productID string, mutate func(tx *gorm.DB) error) (int64, error) {
	productID = strings.TrimSpace(productID)
	var count int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row productModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ? AND deleted_at IS NULL", productID).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrProductNotFound
			}
			return err
		}

		if err := mutate(tx); err != nil {
			return err
		}

		if err := tx.Model(&likeModel{}).
			Where("product_id = ?", productID).
			Count(&count).
			Error; err != nil {
			return err
		}

		return tx.Model(&productModel{}).
			Where("product_id = ?", productID).
			Update("likes_count", count).
			Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type productModel struct {
	ProductID   string     `gorm:"column:product_id;primaryKey"`
	Title       string     `gorm:"column:title"`
	Author      string     `gorm:"column:author"`
	Description string     `gorm:"column:description"`
	CoverURL    string     `gorm:"column:cover_url"`
	OwnerID     *string    `gorm:"column:owner_id;index"`
	Cloneable   bool       `gorm:"column:cloneable"`
	LikesCount  int64      `gorm:"column:likes_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
}

func (productModel) TableName() string { return "products" }

type likeModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	ProductID string    `gorm:"column:product_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (likeModel) TableName() string { return "likes" }

func productModelFromPort(item ports.Product) productModel {
	row := productModel{
		ProductID:   strings.TrimSpace(item.ProductID),
		Title:       strings.TrimSpace(item.Title),
		Author:      strings.TrimSpace(item.Author),
		Description: strings.TrimSpace(item.Description),
		CoverURL:    strings.TrimSpace(item.CoverURL),
		Cloneable:   item.Cloneable,
		LikesCount:  item.LikesCount,
		CreatedAt:   item.CreatedAt.UTC(),
		DeletedAt:   normalizeOptionalTime(item.DeletedAt),
	}
	if owner := strings.TrimSpace(item.OwnerID); owner != "" {
		row.OwnerID = &owner
	}
	return row
}

func (m productModel) toPort() ports.Product {
	item := ports.Product{
		ProductID:   m.ProductID,
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		CoverURL:    m.CoverURL,
		Cloneable:   m.Cloneable,
		LikesCount:  m.LikesCount,
		CreatedAt:   m.CreatedAt.UTC(),
		DeletedAt:   normalizeOptionalTime(m.DeletedAt),
	}
	if m.OwnerID != nil {
		item.OwnerID = *m.OwnerID
	}
	return item
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
