package httpadapter

import (
	"context"
	"log/slog"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"showcase/contexts/identity-access/identity-service/application"
	domainerrors "showcase/contexts/identity-access/identity-service/domain/errors"
	"showcase/contexts/identity-access/identity-service/ports"
	httptransport "showcase/contexts/identity-access/identity-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return httptransport.RegisterResponse{}, asValidationError(err)
	}
	user, err := h.Service.Register(ctx, ports.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}

	resp := httptransport.RegisterResponse{Status: "success"}
	resp.Data.UserID = user.UserID
	resp.Data.IsAdmin = user.IsAdmin
	resp.Data.CreatedAt = user.CreatedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

// LoginHandler returns the session token alongside the response body so
// the platform layer can bind it to a cookie.
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, ports.SessionRecord, error) {
	if err := req.Validate(); err != nil {
		// Malformed login input reads as bad credentials, not a field
		// report, to keep the failure shape uniform.
		return httptransport.LoginResponse{}, ports.SessionRecord{}, domainerrors.ErrInvalidCredentials
	}
	session, identity, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, ports.SessionRecord{}, err
	}

	resp := httptransport.LoginResponse{Status: "success"}
	resp.Data.User = toIdentityDTO(identity)
	return resp, session, nil
}

func (h Handler) LogoutHandler(ctx context.Context, token string) (httptransport.LogoutResponse, error) {
	if err := h.Service.Logout(ctx, token); err != nil {
		return httptransport.LogoutResponse{}, err
	}
	return httptransport.LogoutResponse{Status: "success"}, nil
}

func (h Handler) MeHandler(ctx context.Context, token string) (httptransport.MeResponse, error) {
	identity, err := h.Service.CurrentIdentity(ctx, token)
	if err != nil {
		return httptransport.MeResponse{}, err
	}
	if identity == nil {
		return httptransport.MeResponse{User: nil}, nil
	}
	dto := toIdentityDTO(*identity)
	return httptransport.MeResponse{User: &dto}, nil
}

func toIdentityDTO(identity ports.Identity) httptransport.IdentityDTO {
	return httptransport.IdentityDTO{
		UserID:  identity.UserID,
		Name:    identity.Name,
		Surname: identity.Surname,
		Email:   identity.Email,
		IsAdmin: identity.IsAdmin,
	}
}

func asValidationError(err error) error {
	var fields validation.Errors
	ok := false
	if fieldErrs, isFields := err.(validation.Errors); isFields {
		fields = fieldErrs
		ok = true
	}
	if !ok {
		return domainerrors.NewValidationError(err.Error())
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	reasons := make([]string, 0, len(names))
	for _, name := range names {
		reasons = append(reasons, name+": "+fields[name].Error())
	}
	return domainerrors.NewValidationError(reasons...)
}
