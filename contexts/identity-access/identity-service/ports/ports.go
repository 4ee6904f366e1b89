package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PasswordHasher is a one-way credential hasher. Compare returns
// ErrInvalidCredentials-compatible failures as plain errors; the
// application layer decides what to surface.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type User struct {
	UserID       string
	Name         string
	Surname      string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Identity is the session-resolved acting principal. A nil *Identity
// means anonymous.
type Identity struct {
	UserID  string
	Name    string
	Surname string
	Email   string
	IsAdmin bool
}

type SessionRecord struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type RegisterInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

type Repository interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (User, bool, error)
	GetUserByID(ctx context.Context, userID string) (User, bool, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, record SessionRecord) error
	// GetSession treats records expired at now as absent. Implementations
	// may delete expired rows lazily.
	GetSession(ctx context.Context, token string, now time.Time) (SessionRecord, bool, error)
	DeleteSession(ctx context.Context, token string) error
}
