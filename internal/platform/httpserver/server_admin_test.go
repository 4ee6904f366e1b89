package httpserver

import (
	"net/http"
	"testing"
)

var adminRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/v1/admin/users"},
	{http.MethodDelete, "/api/v1/admin/users/user-1"},
	{http.MethodPost, "/api/v1/admin/products"},
	{http.MethodPatch, "/api/v1/admin/products/prod-1"},
	{http.MethodDelete, "/api/v1/admin/products/prod-1"},
	{http.MethodPost, "/api/v1/admin/products/prod-1/restore"},
	{http.MethodPost, "/api/v1/admin/products/restore-all"},
}

// Admin routes never reveal whether a session exists: anonymous and
// non-admin callers both get 403.
func TestAdminRoutesAnonymousForbidden(t *testing.T) {
	server := newTestServer()
	for _, route := range adminRoutes {
		rr := doJSON(server, route.method, route.path, map[string]any{}, nil)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestAdminRoutesNonAdminForbidden(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "user@example.com")
	cookie := loginUser(t, server, "user@example.com")

	for _, route := range adminRoutes {
		rr := doJSON(server, route.method, route.path, map[string]any{}, cookie)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func adminCookie(t *testing.T, server *Server) *http.Cookie {
	t.Helper()
	registerUser(t, server, "admin@example.com")
	return loginUser(t, server, "admin@example.com")
}

func TestAdminCreatesUnownedProduct(t *testing.T) {
	server := newTestServer()
	cookie := adminCookie(t, server)

	rr := doJSON(server, http.MethodPost, "/api/v1/admin/products", map[string]any{
		"title": "Curated",
	}, cookie)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var created struct {
		Data struct {
			ProductID string `json:"product_id"`
		} `json:"data"`
	}
	decodeBody(t, rr, &created)

	rr = doJSON(server, http.MethodGet, "/api/v1/products/"+created.Data.ProductID, nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected the curated product in the catalog, got %d", rr.Code)
	}
	var fetched struct {
		Data struct {
			Product struct {
				OwnerID string `json:"owner_id"`
			} `json:"product"`
		} `json:"data"`
	}
	decodeBody(t, rr, &fetched)
	if fetched.Data.Product.OwnerID != "" {
		t.Fatalf("expected no owner, got %q", fetched.Data.Product.OwnerID)
	}
}

func TestAdminMergePatchesProduct(t *testing.T) {
	server := newTestServer()
	cookie := adminCookie(t, server)
	registerUser(t, server, "user@example.com")
	userCookie := loginUser(t, server, "user@example.com")
	productID := createProduct(t, server, userCookie, "Original")

	rr := doJSON(server, http.MethodPatch, "/api/v1/admin/products/"+productID, map[string]any{
		"title":  "Edited",
		"author": "",
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var patched struct {
		Data struct {
			Product struct {
				Title   string `json:"title"`
				Author  string `json:"author"`
				OwnerID string `json:"owner_id"`
			} `json:"product"`
		} `json:"data"`
	}
	decodeBody(t, rr, &patched)
	if patched.Data.Product.Title != "Edited" {
		t.Fatalf("expected the title overwritten, got %q", patched.Data.Product.Title)
	}
	if patched.Data.Product.Author != "" {
		t.Fatalf("expected explicit empty author, got %q", patched.Data.Product.Author)
	}
	if patched.Data.Product.OwnerID == "" {
		t.Fatalf("expected untouched owner")
	}

	rr = doJSON(server, http.MethodPatch, "/api/v1/admin/products/missing", map[string]any{
		"title": "X",
	}, cookie)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminSoftDeleteRestoreCycle(t *testing.T) {
	server := newTestServer()
	cookie := adminCookie(t, server)
	registerUser(t, server, "user@example.com")
	userCookie := loginUser(t, server, "user@example.com")
	productID := createProduct(t, server, userCookie, "Ephemeral")

	rr := doJSON(server, http.MethodDelete, "/api/v1/admin/products/"+productID, nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("soft delete: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(server, http.MethodGet, "/api/v1/products/"+productID, nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected the deleted product hidden from the catalog, got %d", rr.Code)
	}

	// Deleting again still succeeds.
	rr = doJSON(server, http.MethodDelete, "/api/v1/admin/products/"+productID, nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("repeated soft delete: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(server, http.MethodPost, "/api/v1/admin/products/"+productID+"/restore", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("restore: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = doJSON(server, http.MethodGet, "/api/v1/products/"+productID, nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected the restored product visible, got %d", rr.Code)
	}
}

func TestAdminRestoreAll(t *testing.T) {
	server := newTestServer()
	cookie := adminCookie(t, server)
	registerUser(t, server, "user@example.com")
	userCookie := loginUser(t, server, "user@example.com")

	first := createProduct(t, server, userCookie, "One")
	second := createProduct(t, server, userCookie, "Two")
	for _, id := range []string{first, second} {
		rr := doJSON(server, http.MethodDelete, "/api/v1/admin/products/"+id, nil, cookie)
		if rr.Code != http.StatusOK {
			t.Fatalf("soft delete %s: got %d", id, rr.Code)
		}
	}

	rr := doJSON(server, http.MethodPost, "/api/v1/admin/products/restore-all", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("restore-all: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var restored struct {
		Data struct {
			Restored int `json:"restored"`
		} `json:"data"`
	}
	decodeBody(t, rr, &restored)
	if restored.Data.Restored != 2 {
		t.Fatalf("expected 2 restored, got %d", restored.Data.Restored)
	}
}

func TestAdminDeleteUserCascades(t *testing.T) {
	server := newTestServer()
	cookie := adminCookie(t, server)
	registerUser(t, server, "user@example.com")
	userCookie := loginUser(t, server, "user@example.com")
	productID := createProduct(t, server, userCookie, "Owned")

	var users struct {
		Data struct {
			Users []struct {
				UserID string `json:"user_id"`
				Email  string `json:"email"`
			} `json:"users"`
		} `json:"data"`
	}
	rr := doJSON(server, http.MethodGet, "/api/v1/admin/users", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("list users: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &users)

	var userID string
	for _, user := range users.Data.Users {
		if user.Email == "user@example.com" {
			userID = user.UserID
		}
	}
	if userID == "" {
		t.Fatalf("expected the user in the directory, got %+v", users.Data.Users)
	}

	rr = doJSON(server, http.MethodDelete, "/api/v1/admin/users/"+userID, nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete user: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var removal struct {
		Data struct {
			ProductsDeleted int `json:"products_deleted"`
		} `json:"data"`
	}
	decodeBody(t, rr, &removal)
	if removal.Data.ProductsDeleted != 1 {
		t.Fatalf("expected 1 product soft-deleted, got %d", removal.Data.ProductsDeleted)
	}

	rr = doJSON(server, http.MethodGet, "/api/v1/products/"+productID, nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected the user's product hidden, got %d", rr.Code)
	}

	// The deleted user's session is destroyed with them.
	rr = doJSON(server, http.MethodGet, "/api/v1/auth/me", nil, userCookie)
	var me struct {
		User *struct{} `json:"user"`
	}
	decodeBody(t, rr, &me)
	if me.User != nil {
		t.Fatalf("expected the cascaded session to be gone, got %+v", me.User)
	}

	rr = doJSON(server, http.MethodDelete, "/api/v1/admin/users/"+userID, nil, cookie)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat, got %d body=%s", rr.Code, rr.Body.String())
	}
}
