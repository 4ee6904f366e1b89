package httpserver

import (
	"errors"
	"net/http"
	"time"

	producthttp "showcase/contexts/catalog-experience/product-service/transport/http"
	"showcase/contexts/identity-access/identity-service/domain/policy"
	moderationerrors "showcase/contexts/moderation-safety/moderation-service/domain/errors"
	moderationhttp "showcase/contexts/moderation-safety/moderation-service/transport/http"
)

func writeModerationError(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	writeJSON(w, status, moderationhttp.ErrorEnvelope{
		Status: "error",
		Error: moderationhttp.ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeModerationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, moderationerrors.ErrInvalidRequest):
		writeModerationError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	case errors.Is(err, moderationerrors.ErrProductNotFound),
		errors.Is(err, moderationerrors.ErrUserNotFound):
		writeModerationError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		writeModerationError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	resp, err := s.moderation.Handler.ListUsersHandler(r.Context())
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	resp, err := s.moderation.Handler.DeleteUserHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Admin-authored products carry no owner; the catalog module handles the
// rest of the create semantics.
func (s *Server) handleAdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	var req producthttp.CreateProductRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeCatalogError(w, status, code, message, nil)
	}) {
		return
	}
	resp, err := s.catalog.Handler.CreateProductHandler(r.Context(), "", req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	var req moderationhttp.UpdateProductRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeModerationError(w, status, code, message, nil)
	}) {
		return
	}
	resp, err := s.moderation.Handler.UpdateProductHandler(r.Context(), r.PathValue("product_id"), req)
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	resp, err := s.moderation.Handler.DeleteProductHandler(r.Context(), r.PathValue("product_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminRestoreProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	resp, err := s.moderation.Handler.RestoreProductHandler(r.Context(), r.PathValue("product_id"))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminRestoreAllProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireCapability(w, r, policy.CapabilityAdmin); !ok {
		return
	}
	resp, err := s.moderation.Handler.RestoreAllProductsHandler(r.Context())
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
