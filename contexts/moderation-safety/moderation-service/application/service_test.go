package application

import (
	"context"
	"errors"
	"testing"
	"time"

	productmemory "showcase/contexts/catalog-experience/product-service/adapters/memory"
	productapp "showcase/contexts/catalog-experience/product-service/application"
	productports "showcase/contexts/catalog-experience/product-service/ports"
	identitymemory "showcase/contexts/identity-access/identity-service/adapters/memory"
	identityports "showcase/contexts/identity-access/identity-service/ports"
	"showcase/contexts/moderation-safety/moderation-service/adapters/memory"
	domainerrors "showcase/contexts/moderation-safety/moderation-service/domain/errors"
	"showcase/contexts/moderation-safety/moderation-service/ports"
)

type moderationFixture struct {
	service  Service
	products *productmemory.Store
	users    *identitymemory.Store
	catalog  productapp.Service
}

func newFixture() moderationFixture {
	products := productmemory.NewStore()
	users := identitymemory.NewStore()
	store := memory.NewStore(products, users)
	return moderationFixture{
		service: Service{
			Products:  store,
			Directory: store,
			Clock:     products,
		},
		products: products,
		users:    users,
		catalog: productapp.Service{
			Repo:        products,
			Clock:       products,
			IDGenerator: products,
		},
	}
}

func (f moderationFixture) mustCreateProduct(t *testing.T, title string, ownerID string) productports.Product {
	t.Helper()
	product, err := f.catalog.CreateProduct(context.Background(), productports.CreateProductInput{
		Title:   title,
		OwnerID: ownerID,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f moderationFixture) mustCreateUser(t *testing.T, userID string, email string) {
	t.Helper()
	err := f.users.CreateUser(context.Background(), identityports.User{
		UserID:    userID,
		Name:      "Test",
		Surname:   "User",
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateProductMergesOnlyProvidedFields(t *testing.T) {
	f := newFixture()
	created := f.mustCreateProduct(t, "Original", "user-1")

	updated, err := f.service.UpdateProduct(context.Background(), created.ProductID, ports.ProductPatch{
		Title:       strPtr("Renamed"),
		Description: strPtr(""),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected title overwritten, got %q", updated.Title)
	}
	if updated.Description != "" {
		t.Fatalf("expected explicit empty description, got %q", updated.Description)
	}
	if updated.OwnerID != "user-1" {
		t.Fatalf("expected untouched owner, got %q", updated.OwnerID)
	}
}

func TestUpdateProductUnknownIDIsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.UpdateProduct(context.Background(), "missing", ports.ProductPatch{Title: strPtr("X")})
	if !errors.Is(err, domainerrors.ErrProductNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSoftDeleteHidesAndRestoreRevives(t *testing.T) {
	f := newFixture()
	created := f.mustCreateProduct(t, "Card", "user-1")

	if _, err := f.service.SoftDeleteProduct(context.Background(), created.ProductID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if _, err := f.catalog.GetActive(context.Background(), created.ProductID); err == nil {
		t.Fatalf("expected deleted product to be hidden from the catalog")
	}

	// Repeating the delete succeeds silently.
	if _, err := f.service.SoftDeleteProduct(context.Background(), created.ProductID); err != nil {
		t.Fatalf("repeated soft delete must succeed, got %v", err)
	}

	if err := f.service.RestoreProduct(context.Background(), created.ProductID); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if _, err := f.catalog.GetActive(context.Background(), created.ProductID); err != nil {
		t.Fatalf("expected restored product to be visible, got %v", err)
	}
	if err := f.service.RestoreProduct(context.Background(), created.ProductID); err != nil {
		t.Fatalf("restoring an active product must succeed, got %v", err)
	}
}

func TestRestoreAllCountsOnlyDeleted(t *testing.T) {
	f := newFixture()
	first := f.mustCreateProduct(t, "One", "user-1")
	second := f.mustCreateProduct(t, "Two", "user-1")
	f.mustCreateProduct(t, "Three", "user-1")

	if _, err := f.service.SoftDeleteProduct(context.Background(), first.ProductID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if _, err := f.service.SoftDeleteProduct(context.Background(), second.ProductID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	restored, err := f.service.RestoreAllProducts(context.Background())
	if err != nil {
		t.Fatalf("restore all failed: %v", err)
	}
	if restored != 2 {
		t.Fatalf("expected 2 restored, got %d", restored)
	}

	items, err := f.catalog.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected all 3 products active, got %d", len(items))
	}

	restored, err = f.service.RestoreAllProducts(context.Background())
	if err != nil || restored != 0 {
		t.Fatalf("expected nothing left to restore, got %d err=%v", restored, err)
	}
}

func TestDeleteUserCascadesToProductsAndSessions(t *testing.T) {
	f := newFixture()
	f.mustCreateUser(t, "user-1", "one@example.com")
	f.mustCreateUser(t, "user-2", "two@example.com")
	owned := f.mustCreateProduct(t, "Owned", "user-1")
	kept := f.mustCreateProduct(t, "Kept", "user-2")

	err := f.users.CreateSession(context.Background(), identityports.SessionRecord{
		Token:     "tok-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	removal, err := f.service.DeleteUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	if removal.ProductsDeleted != 1 {
		t.Fatalf("expected 1 product soft-deleted, got %d", removal.ProductsDeleted)
	}

	if _, err := f.catalog.GetActive(context.Background(), owned.ProductID); err == nil {
		t.Fatalf("expected the owned product to be hidden after the cascade")
	}
	if _, err := f.catalog.GetActive(context.Background(), kept.ProductID); err != nil {
		t.Fatalf("expected the other user's product to survive, got %v", err)
	}

	if _, found, err := f.users.GetUserByID(context.Background(), "user-1"); err != nil || found {
		t.Fatalf("expected the user row to be gone, found=%v err=%v", found, err)
	}
	if _, found, err := f.users.GetSession(context.Background(), "tok-1", time.Now().UTC()); err != nil || found {
		t.Fatalf("expected the user's sessions to be destroyed, found=%v err=%v", found, err)
	}

	_, err = f.service.DeleteUser(context.Background(), "user-1")
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found on repeat, got %v", err)
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	f := newFixture()
	f.mustCreateUser(t, "user-1", "one@example.com")
	f.mustCreateUser(t, "user-2", "two@example.com")

	users, err := f.service.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].UserID != "user-2" {
		t.Fatalf("expected newest first, got %q", users[0].UserID)
	}
}
