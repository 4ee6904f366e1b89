// Package bcrypt adapts golang.org/x/crypto/bcrypt to the identity
// service's PasswordHasher port.
package bcrypt

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost keeps verification around 100ms on current hardware.
const DefaultCost = 12

type Hasher struct {
	Cost int
}

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{Cost: cost}
}

func (h Hasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	raw, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (h Hasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
