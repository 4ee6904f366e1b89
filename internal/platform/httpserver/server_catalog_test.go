package httpserver

import (
	"net/http"
	"testing"
)

func TestCreateProductRequiresAuthentication(t *testing.T) {
	server := newTestServer()
	rr := doJSON(server, http.MethodPost, "/api/v1/products", map[string]any{
		"title": "Card",
	}, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLikeRequiresAuthentication(t *testing.T) {
	server := newTestServer()

	rr := doJSON(server, http.MethodPost, "/api/v1/products/prod-1/like", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("like: expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(server, http.MethodDelete, "/api/v1/products/prod-1/like", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unlike: expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListProductsIsPublic(t *testing.T) {
	server := newTestServer()
	rr := doJSON(server, http.MethodGet, "/api/v1/products", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetUnknownProductIsNotFound(t *testing.T) {
	server := newTestServer()
	rr := doJSON(server, http.MethodGet, "/api/v1/products/missing", nil, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateProductWithoutTitleIsRejected(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "user@example.com")
	cookie := loginUser(t, server, "user@example.com")

	rr := doJSON(server, http.MethodPost, "/api/v1/products", map[string]any{
		"title": "   ",
	}, cookie)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLikeAndUnlikeThroughTheAPI(t *testing.T) {
	server := newTestServer()
	registerUser(t, server, "user@example.com")
	cookie := loginUser(t, server, "user@example.com")
	productID := createProduct(t, server, cookie, "Likable")

	var likeResp struct {
		Data struct {
			Likes int64 `json:"likes"`
		} `json:"data"`
	}

	rr := doJSON(server, http.MethodPost, "/api/v1/products/"+productID+"/like", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &likeResp)
	if likeResp.Data.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", likeResp.Data.Likes)
	}

	rr = doJSON(server, http.MethodPost, "/api/v1/products/"+productID+"/like", nil, cookie)
	decodeBody(t, rr, &likeResp)
	if likeResp.Data.Likes != 1 {
		t.Fatalf("repeated like must stay at 1, got %d", likeResp.Data.Likes)
	}

	rr = doJSON(server, http.MethodDelete, "/api/v1/products/"+productID+"/like", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("unlike: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &likeResp)
	if likeResp.Data.Likes != 0 {
		t.Fatalf("expected 0 likes after unlike, got %d", likeResp.Data.Likes)
	}
}
