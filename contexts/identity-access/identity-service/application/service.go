package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"showcase/contexts/identity-access/identity-service/domain/credentials"
	domainerrors "showcase/contexts/identity-access/identity-service/domain/errors"
	"showcase/contexts/identity-access/identity-service/ports"
)

const maxNameLength = 100

type Service struct {
	Repo        ports.Repository
	Sessions    ports.SessionStore
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	AdminEmails map[string]struct{}
	SessionTTL  time.Duration
	Logger      *slog.Logger
}

func (s Service) Register(ctx context.Context, input ports.RegisterInput) (ports.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Surname = strings.TrimSpace(input.Surname)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var reasons []string
	if input.Name == "" || input.Surname == "" || email == "" || input.Password == "" {
		reasons = append(reasons, "name, surname, email and password are required")
	}
	if len([]rune(input.Name)) > maxNameLength || len([]rune(input.Surname)) > maxNameLength {
		reasons = append(reasons, "name and surname must be at most 100 characters")
	}
	if email != "" && !credentials.ValidEmail(email) {
		reasons = append(reasons, "invalid email")
	}
	if result := credentials.CheckPassword(input.Password, email); !result.OK {
		for _, reason := range result.Reasons {
			reasons = append(reasons, reason.Message())
		}
	}
	if len(reasons) > 0 {
		return ports.User{}, domainerrors.NewValidationError(reasons...)
	}

	hash, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return ports.User{}, err
	}
	userID, err := s.newID(ctx)
	if err != nil {
		return ports.User{}, err
	}

	_, isAdmin := s.AdminEmails[email]
	user := ports.User{
		UserID:       userID,
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    s.now(),
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return ports.User{}, err
	}

	s.logger().Info("user registered",
		"event", "identity_user_registered",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
		"is_admin", user.IsAdmin,
	)
	return user, nil
}

// Login verifies credentials and establishes a session. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s Service) Login(ctx context.Context, email string, password string) (ports.SessionRecord, ports.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return ports.SessionRecord{}, ports.Identity{}, domainerrors.ErrInvalidCredentials
	}

	user, found, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return ports.SessionRecord{}, ports.Identity{}, err
	}
	if !found {
		return ports.SessionRecord{}, ports.Identity{}, domainerrors.ErrInvalidCredentials
	}
	if err := s.Hasher.Compare(user.PasswordHash, password); err != nil {
		return ports.SessionRecord{}, ports.Identity{}, domainerrors.ErrInvalidCredentials
	}

	token, err := s.newID(ctx)
	if err != nil {
		return ports.SessionRecord{}, ports.Identity{}, err
	}
	now := s.now()
	record := ports.SessionRecord{
		Token:     token,
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL()),
	}
	if err := s.Sessions.CreateSession(ctx, record); err != nil {
		return ports.SessionRecord{}, ports.Identity{}, err
	}

	s.logger().Info("session established",
		"event", "identity_session_established",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return record, identityOf(user), nil
}

// Logout destroys the session. Unknown or already-destroyed tokens are a
// successful no-op.
func (s Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.Sessions.DeleteSession(ctx, token)
}

// CurrentIdentity resolves the acting identity for a session token. A
// missing or expired session yields a nil identity, not an error.
func (s Service) CurrentIdentity(ctx context.Context, token string) (*ports.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	record, found, err := s.Sessions.GetSession(ctx, token, s.now())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	user, found, err := s.Repo.GetUserByID(ctx, record.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	identity := identityOf(user)
	return &identity, nil
}

func identityOf(user ports.User) ports.Identity {
	return ports.Identity{
		UserID:  user.UserID,
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return 24 * time.Hour
	}
	return s.SessionTTL
}

func (s Service) newID(ctx context.Context) (string, error) {
	return s.IDGenerator.NewID(ctx)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
