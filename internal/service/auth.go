package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"wokstore/internal/domain"
	"wokstore/internal/storage"
)

// AuthState is the session state machine: Initializing until the startup
// load resolves, then Unauthenticated or Authenticated.
type AuthState int

const (
	AuthStateInitializing AuthState = iota
	AuthStateUnauthenticated
	AuthStateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthStateInitializing:
		return "initializing"
	case AuthStateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// AuthManager tracks the current session and mediates credential operations
// through a UserSource. Session persistence goes through the shared
// SessionStore, the same primitive the transport layer evicts through on 401.
type AuthManager struct {
	mu      sync.Mutex
	users   UserSource
	session *storage.SessionStore
	log     *logrus.Logger

	state   AuthState
	user    *domain.User
	loading bool
	subs    map[int]func()
	nextSub int
}

func NewAuthManager(users UserSource, session *storage.SessionStore, log *logrus.Logger) *AuthManager {
	return &AuthManager{
		users:   users,
		session: session,
		log:     log,
		state:   AuthStateInitializing,
		subs:    make(map[int]func()),
	}
}

// Load resolves the startup state from the persisted session. Until Load
// completes the manager reports AuthStateInitializing, so callers can tell
// "don't know yet" from "logged out".
func (m *AuthManager) Load(ctx context.Context) {
	user, ok := m.session.User(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if ok {
		m.user = user
		m.state = AuthStateAuthenticated
	} else {
		m.state = AuthStateUnauthenticated
	}
	m.notify()
}

// Login delegates to the user source. On failure the session state is left
// exactly as it was and the error is returned to the caller.
func (m *AuthManager) Login(ctx context.Context, creds domain.Credentials) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.users.Login(ctx, creds)
	if err != nil {
		m.log.WithError(err).Error("auth: login failed")
		return err
	}

	m.adopt(ctx, resp)
	return nil
}

// Register has the same contract as Login; a successful registration
// immediately establishes an authenticated session.
func (m *AuthManager) Register(ctx context.Context, data domain.RegisterData) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.users.Register(ctx, data)
	if err != nil {
		m.log.WithError(err).Error("auth: registration failed")
		return err
	}

	m.adopt(ctx, resp)
	return nil
}

func (m *AuthManager) adopt(ctx context.Context, resp *domain.AuthResponse) {
	if err := m.session.Save(ctx, resp.User, resp.Token); err != nil {
		m.log.WithError(err).Warn("auth: failed to persist session")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user := resp.User
	m.user = &user
	m.state = AuthStateAuthenticated
	m.notify()
}

// Logout clears the local session unconditionally. A failing remote logout
// is logged and swallowed: the user-visible effect must always take hold.
func (m *AuthManager) Logout(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.users.Logout(ctx); err != nil {
		m.log.WithError(err).Error("auth: remote logout failed, clearing local session anyway")
	}

	m.session.Clear(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.state = AuthStateUnauthenticated
	m.notify()
}

// UpdateUser merges the patch into the current user record and persists it.
// No-op when no session is active.
func (m *AuthManager) UpdateUser(ctx context.Context, patch domain.UserPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return
	}

	if patch.Email != nil {
		m.user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		m.user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		m.user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		m.user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		m.user.Address = patch.Address
	}

	if err := m.session.SaveUser(ctx, *m.user); err != nil {
		m.log.WithError(err).Warn("auth: failed to persist updated user")
	}
	m.notify()
}

func (m *AuthManager) State() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns a copy of the session user, or nil.
func (m *AuthManager) CurrentUser() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

func (m *AuthManager) IsAuthenticated() bool {
	return m.State() == AuthStateAuthenticated
}

func (m *AuthManager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *AuthManager) setLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = loading
	m.notify()
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (m *AuthManager) Subscribe(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *AuthManager) notify() {
	for _, fn := range m.subs {
		fn()
	}
}
