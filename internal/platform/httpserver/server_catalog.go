package httpserver

import (
	"errors"
	"net/http"
	"time"

	producterrors "showcase/contexts/catalog-experience/product-service/domain/errors"
	producthttp "showcase/contexts/catalog-experience/product-service/transport/http"
	"showcase/contexts/identity-access/identity-service/domain/policy"
)

func writeCatalogError(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	writeJSON(w, status, producthttp.ErrorEnvelope{
		Status: "error",
		Error: producthttp.ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, producterrors.ErrTitleRequired):
		writeCatalogError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), map[string]any{
			"reasons": []string{"title: cannot be blank"},
		})
	case errors.Is(err, producterrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	case errors.Is(err, producterrors.ErrProductNotFound):
		writeCatalogError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		writeCatalogError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListProductsHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetProductHandler(r.Context(), r.PathValue("product_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireCapability(w, r, policy.CapabilityAuthenticated)
	if !ok {
		return
	}
	var req producthttp.CreateProductRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeCatalogError(w, status, code, message, nil)
	}) {
		return
	}
	resp, err := s.catalog.Handler.CreateProductHandler(r.Context(), identity.UserID, req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLikeProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireCapability(w, r, policy.CapabilityAuthenticated)
	if !ok {
		return
	}
	resp, err := s.catalog.Handler.LikeHandler(r.Context(), identity.UserID, r.PathValue("product_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnlikeProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireCapability(w, r, policy.CapabilityAuthenticated)
	if !ok {
		return
	}
	resp, err := s.catalog.Handler.UnlikeHandler(r.Context(), identity.UserID, r.PathValue("product_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
