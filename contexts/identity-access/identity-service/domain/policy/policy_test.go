package policy

import (
	"errors"
	"testing"

	"showcase/contexts/identity-access/identity-service/ports"
)

func TestAuthorizeAuthenticated(t *testing.T) {
	if err := Authorize(nil, CapabilityAuthenticated); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := Authorize(&ports.Identity{UserID: "user-1"}, CapabilityAuthenticated); err != nil {
		t.Fatalf("expected authenticated user to pass, got %v", err)
	}
}

func TestAuthorizeAdminAnonymousIsForbidden(t *testing.T) {
	// Anonymous admin calls must read as forbidden, never unauthenticated.
	err := Authorize(nil, CapabilityAdmin)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous admin call must not be unauthenticated")
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	if err := Authorize(&ports.Identity{UserID: "user-1"}, CapabilityAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected non-admin to be forbidden, got %v", err)
	}
	if err := Authorize(&ports.Identity{UserID: "admin-1", IsAdmin: true}, CapabilityAdmin); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}
