package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"wokstore/internal/domain"
)

// SessionStore owns the persisted session pair (bearer token + user record).
// Both the auth manager's logout and the transport-layer 401 handler evict
// through Clear, so the two paths cannot diverge.
type SessionStore struct {
	kv KeyValueStore
}

func NewSessionStore(kv KeyValueStore) *SessionStore {
	return &SessionStore{kv: kv}
}

// Token returns the stored bearer token, or "" when no session is persisted.
func (s *SessionStore) Token(ctx context.Context) string {
	token, ok, err := s.kv.Get(ctx, KeyAuthToken)
	if err != nil || !ok {
		return ""
	}
	return token
}

// User loads the persisted user record. A corrupt record reads as absent.
func (s *SessionStore) User(ctx context.Context) (*domain.User, bool) {
	raw, ok, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil || !ok {
		return nil, false
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (s *SessionStore) Save(ctx context.Context, user domain.User, token string) error {
	if err := s.kv.Set(ctx, KeyAuthToken, token); err != nil {
		return errors.Wrap(err, "persist auth token")
	}
	return s.SaveUser(ctx, user)
}

func (s *SessionStore) SaveUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode user record")
	}
	return errors.Wrap(s.kv.Set(ctx, KeyCurrentUser, string(raw)), "persist user record")
}

// Clear removes both the token and the user record.
func (s *SessionStore) Clear(ctx context.Context) {
	_ = s.kv.Delete(ctx, KeyAuthToken)
	_ = s.kv.Delete(ctx, KeyCurrentUser)
}
