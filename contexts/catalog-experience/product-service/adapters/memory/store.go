package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "showcase/contexts/catalog-experience/product-service/domain/errors"
	"showcase/contexts/catalog-experience/product-service/ports"
)

// Store keeps products and the like relation in memory. The moderation
// memory adapter reaches into the same store through the exported
// moderation helpers so admin actions and public reads stay consistent.
type Store struct {
	mu       sync.RWMutex
	products map[string]ports.Product
	likes    map[string]map[string]struct{}
	sequence uint64
}

func NewStore() *Store {
	return &Store{
		products: make(map[string]ports.Product),
		likes:    make(map[string]map[string]struct{}),
	}
}

func (s *Store) ListActive(_ context.Context) ([]ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Product, 0, len(s.products))
	for _, item := range s.products {
		if item.DeletedAt != nil {
			continue
		}
		items = append(items, cloneProduct(item))
	}
	sort.Slice(items, func(i, j int) bool {
		// Sequence IDs break ties for products created in the same instant.
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ProductID > items[j].ProductID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetActive(_ context.Context, productID string) (ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.products[productID]
	if !ok || item.DeletedAt != nil {
		return ports.Product{}, domainerrors.ErrProductNotFound
	}
	return cloneProduct(item), nil
}

func (s *Store) CreateProduct(_ context.Context, product ports.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ProductID] = cloneProduct(product)
	return nil
}

func (s *Store) Like(_ context.Context, userID string, productID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.products[productID]
	if !ok || item.DeletedAt != nil {
		return 0, domainerrors.ErrProductNotFound
	}
	if s.likes[productID] == nil {
		s.likes[productID] = make(map[string]struct{})
	}
	s.likes[productID][userID] = struct{}{}
	return s.recountLocked(productID), nil
}

func (s *Store) Unlike(_ context.Context, userID string, productID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.products[productID]
	if !ok || item.DeletedAt != nil {
		return 0, domainerrors.ErrProductNotFound
	}
	delete(s.likes[productID], userID)
	return s.recountLocked(productID), nil
}

// recountLocked persists the exact cardinality of the like set as the
// product's count and returns it. Callers hold the write lock.
func (s *Store) recountLocked(productID string) int64 {
	count := int64(len(s.likes[productID]))
	item := s.products[productID]
	item.LikesCount = count
	s.products[productID] = item
	return count
}

// ApplyPatch overwrites only the fields whose pointers are non-nil; nil
// means "keep", a pointer to "" means "set empty". Reports whether the
// product exists.
func (s *Store) ApplyPatch(
	_ context.Context,
	productID string,
	title, author, description, coverURL *string,
	cloneable *bool,
) (ports.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.products[productID]
	if !ok {
		return ports.Product{}, false, nil
	}
	if title != nil {
		item.Title = *title
	}
	if author != nil {
		item.Author = *author
	}
	if description != nil {
		item.Description = *description
	}
	if coverURL != nil {
		item.CoverURL = *coverURL
	}
	if cloneable != nil {
		item.Cloneable = *cloneable
	}
	s.products[productID] = item
	return cloneProduct(item), true, nil
}

// SetDeleted stamps or clears DeletedAt regardless of the current state,
// which makes soft delete and restore idempotent. Reports whether the
// product exists.
func (s *Store) SetDeleted(_ context.Context, productID string, deletedAt *time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.products[productID]
	if !ok {
		return false, nil
	}
	if deletedAt != nil {
		stamp := deletedAt.UTC()
		item.DeletedAt = &stamp
	} else {
		item.DeletedAt = nil
	}
	s.products[productID] = item
	return true, nil
}

// RestoreAll clears DeletedAt on every soft-deleted product and returns
// how many were restored.
func (s *Store) RestoreAll(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for id, item := range s.products {
		if item.DeletedAt == nil {
			continue
		}
		item.DeletedAt = nil
		s.products[id] = item
		restored++
	}
	return restored, nil
}

// SoftDeleteByOwner stamps every active product owned by ownerID and
// returns how many were affected.
func (s *Store) SoftDeleteByOwner(_ context.Context, ownerID string, deletedAt time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := deletedAt.UTC()
	affected := 0
	for id, item := range s.products {
		if item.OwnerID != ownerID || item.DeletedAt != nil {
			continue
		}
		item.DeletedAt = &stamp
		s.products[id] = item
		affected++
	}
	return affected, nil
}

// GetAny returns the product regardless of deletion state. Used by
// moderation reads.
func (s *Store) GetAny(_ context.Context, productID string) (ports.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.products[productID]
	if !ok {
		return ports.Product{}, false, nil
	}
	return cloneProduct(item), true, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return fmt.Sprintf("prod_%06d", atomic.AddUint64(&s.sequence, 1)), nil
}

func cloneProduct(item ports.Product) ports.Product {
	if item.DeletedAt != nil {
		stamp := item.DeletedAt.UTC()
		item.DeletedAt = &stamp
	}
	return item
}
