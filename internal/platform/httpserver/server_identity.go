package httpserver

import (
	"errors"
	"net/http"
	"time"

	identityerrors "showcase/contexts/identity-access/identity-service/domain/errors"
	"showcase/contexts/identity-access/identity-service/domain/policy"
	"showcase/contexts/identity-access/identity-service/ports"
	identityhttp "showcase/contexts/identity-access/identity-service/transport/http"
)

func writeIdentityError(w http.ResponseWriter, status int, code string, message string, details map[string]any) {
	writeJSON(w, status, identityhttp.ErrorEnvelope{
		Status: "error",
		Error: identityhttp.ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeIdentityDomainError(w http.ResponseWriter, err error) {
	var validationErr *identityerrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeIdentityError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request validation failed", map[string]any{
			"reasons": validationErr.Reasons,
		})
	case errors.Is(err, identityerrors.ErrValidation):
		writeIdentityError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, identityerrors.ErrDuplicateIdentity):
		writeIdentityError(w, http.StatusConflict, "DUPLICATE_IDENTITY", "an account with this email already exists", nil)
	case errors.Is(err, identityerrors.ErrInvalidCredentials):
		writeIdentityError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", nil)
	case errors.Is(err, identityerrors.ErrUserNotFound):
		writeIdentityError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		writeIdentityError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

func writeAuthorizationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, policy.ErrUnauthenticated):
		writeIdentityError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication is required", nil)
	case errors.Is(err, policy.ErrForbidden):
		writeIdentityError(w, http.StatusForbidden, "FORBIDDEN", "admin access is required", nil)
	default:
		writeIdentityError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

// currentIdentity resolves the session cookie to an identity. A missing,
// expired, or dangling session yields a nil identity, not an error.
func (s *Server) currentIdentity(r *http.Request) (*ports.Identity, error) {
	token := sessionToken(r)
	if token == "" {
		return nil, nil
	}
	return s.identity.Service.CurrentIdentity(r.Context(), token)
}

// requireCapability runs the policy for the request's identity and writes
// the authorization failure itself. The identity is returned for handlers
// that need the acting user.
func (s *Server) requireCapability(w http.ResponseWriter, r *http.Request, capability policy.Capability) (*ports.Identity, bool) {
	identity, err := s.currentIdentity(r)
	if err != nil {
		writeIdentityError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
		return nil, false
	}
	if err := policy.Authorize(identity, capability); err != nil {
		writeAuthorizationError(w, err)
		return nil, false
	}
	return identity, true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.RegisterRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeIdentityError(w, status, code, message, nil)
	}) {
		return
	}
	resp, err := s.identity.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.LoginRequest
	if !s.decodeJSON(w, r, &req, func(w http.ResponseWriter, status int, code string, message string) {
		writeIdentityError(w, status, code, message, nil)
	}) {
		return
	}
	resp, session, err := s.identity.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	setSessionCookie(w, session.Token, session.ExpiresAt)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	resp, err := s.identity.Handler.LogoutHandler(r.Context(), sessionToken(r))
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	resp, err := s.identity.Handler.MeHandler(r.Context(), sessionToken(r))
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
