package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	domainerrors "showcase/contexts/identity-access/identity-service/domain/errors"
	"showcase/contexts/identity-access/identity-service/ports"
)

// Store is the in-memory repository and session store used by tests and
// local runs. It also serves as Clock and IDGenerator for module wiring.
type Store struct {
	mu       sync.RWMutex
	users    map[string]ports.User
	byEmail  map[string]string
	sessions map[string]ports.SessionRecord
	sequence uint64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]ports.User),
		byEmail:  make(map[string]string),
		sessions: make(map[string]ports.SessionRecord),
	}
}

func (s *Store) CreateUser(_ context.Context, user ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	if _, exists := s.byEmail[email]; exists {
		return domainerrors.ErrDuplicateIdentity
	}
	user.Email = email
	s.users[user.UserID] = user
	s.byEmail[email] = user.UserID
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (ports.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return ports.User{}, false, nil
	}
	return s.users[userID], true, nil
}

func (s *Store) GetUserByID(_ context.Context, userID string) (ports.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	return user, ok, nil
}

// ListUsers returns every registered user, newest first. Used by the
// moderation memory adapter.
func (s *Store) ListUsers(_ context.Context) ([]ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.User, 0, len(s.users))
	for _, user := range s.users {
		items = append(items, user)
	}
	sort.Slice(items, func(i, j int) bool {
		// Sequence IDs break ties for users registered in the same instant.
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].UserID > items[j].UserID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// RemoveUser drops the user row and every session bound to it. Reports
// whether the user existed.
func (s *Store) RemoveUser(_ context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return false, nil
	}
	delete(s.users, userID)
	delete(s.byEmail, user.Email)
	for token, record := range s.sessions {
		if record.UserID == userID {
			delete(s.sessions, token)
		}
	}
	return true, nil
}

func (s *Store) CreateSession(_ context.Context, record ports.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[record.Token] = record
	return nil
}

func (s *Store) GetSession(_ context.Context, token string, now time.Time) (ports.SessionRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[token]
	if !ok {
		return ports.SessionRecord{}, false, nil
	}
	if now.UTC().After(record.ExpiresAt.UTC()) {
		delete(s.sessions, token)
		return ports.SessionRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return fmt.Sprintf("id_%06d", atomic.AddUint64(&s.sequence, 1)), nil
}
