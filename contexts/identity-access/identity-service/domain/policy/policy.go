// Package policy decides whether an acting identity may perform an
// operation. Two capability levels exist; there is no per-resource
// ownership capability in this design.
package policy

import (
	"errors"

	"showcase/contexts/identity-access/identity-service/ports"
)

type Capability string

const (
	CapabilityAuthenticated Capability = "authenticated"
	CapabilityAdmin         Capability = "admin"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Authorize evaluates capability against identity. A nil identity is
// anonymous. Anonymous callers of admin operations get ErrForbidden,
// not ErrUnauthenticated: admin endpoints never reveal whether a
// session would have helped.
func Authorize(identity *ports.Identity, capability Capability) error {
	switch capability {
	case CapabilityAuthenticated:
		if identity == nil {
			return ErrUnauthenticated
		}
		return nil
	case CapabilityAdmin:
		if identity == nil || !identity.IsAdmin {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
