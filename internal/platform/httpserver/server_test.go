package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	productservice "showcase/contexts/catalog-experience/product-service"
	identityservice "showcase/contexts/identity-access/identity-service"
	moderationservice "showcase/contexts/moderation-safety/moderation-service"
)

func newTestServer() *Server {
	identityModule := identityservice.NewInMemoryModule([]string{"admin@example.com"}, slog.Default())
	catalogModule := productservice.NewInMemoryModule(slog.Default())
	moderationModule := moderationservice.NewInMemoryModule(
		catalogModule.Store,
		identityModule.Store,
		slog.Default(),
	)
	return New(identityModule, catalogModule, moderationModule, slog.Default(), ":0")
}

func doJSON(server *Server, method string, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func registerUser(t *testing.T, server *Server, email string) {
	t.Helper()
	rr := doJSON(server, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Test",
		"surname":  "User",
		"email":    email,
		"password": "Str0ng&Sound",
	}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d body=%s", email, rr.Code, rr.Body.String())
	}
}

func loginUser(t *testing.T, server *Server, email string) *http.Cookie {
	t.Helper()
	rr := doJSON(server, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "Str0ng&Sound",
	}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", email, rr.Code, rr.Body.String())
	}
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("login %s: no session cookie in response", email)
	return nil
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v body=%s", err, rr.Body.String())
	}
}

func createProduct(t *testing.T, server *Server, cookie *http.Cookie, title string) string {
	t.Helper()
	rr := doJSON(server, http.MethodPost, "/api/v1/products", map[string]any{
		"title":  title,
		"author": "Someone",
	}, cookie)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Data struct {
			ProductID string `json:"product_id"`
		} `json:"data"`
	}
	decodeBody(t, rr, &resp)
	if resp.Data.ProductID == "" {
		t.Fatalf("create product: missing product_id")
	}
	return resp.Data.ProductID
}

func TestHealthz(t *testing.T) {
	server := newTestServer()
	rr := doJSON(server, http.MethodGet, "/healthz", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
