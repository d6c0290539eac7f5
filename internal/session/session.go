// Package session holds the authenticated identity and role for the life of
// the process. The Manager is the single writer of session state; everything
// else reads through its accessors.
//
// State machine: Anonymous -> Authenticating -> Authenticated(role), back to
// Anonymous on logout, on restore failure, or on a 401 from any in-flight
// request.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/learnhub-io/learnhub-cli/internal/api"
	"github.com/learnhub-io/learnhub-cli/internal/platform/storage"
)

// State is the session lifecycle state.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// ErrNotAuthenticated is returned by operations that need a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Manager owns session state: the bearer token, the identity snapshot and
// their durable copies under the fixed storage keys.
type Manager struct {
	client *api.Client
	store  storage.Store

	mu       sync.RWMutex
	state    State
	identity api.Identity
	role     Role
}

// NewManager creates a session manager and installs its teardown as the
// client's unauthorized hook, so a 401 from any endpoint clears the session.
func NewManager(client *api.Client, store storage.Store) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		state:  Anonymous,
	}
	client.SetUnauthorizedHook(m.Invalidate)
	return m
}

// Restore loads a previously persisted session. A missing token or a
// rejected/unparseable snapshot leaves the session anonymous without error;
// the stale keys are cleared.
func (m *Manager) Restore(ctx context.Context) error {
	raw, ok, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}
	if !ok {
		return nil
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil || token == "" {
		slog.Warn("stored token is unreadable, discarding", "error", err)
		m.clear(ctx)
		return nil
	}

	m.setState(Authenticating)
	m.client.SetToken(token)

	identity, err := m.client.CurrentUser(ctx)
	if err != nil {
		// expired or revoked token: back to anonymous, keys cleared
		slog.Warn("session restore rejected", "error", err)
		m.clear(ctx)
		return nil
	}

	return m.establish(ctx, token, identity)
}

// Login authenticates and persists the session. The returned error carries
// the server's message verbatim for inline display on the login form.
func (m *Manager) Login(ctx context.Context, creds api.Credentials) (api.Identity, error) {
	m.setState(Authenticating)

	resp, err := m.client.SignIn(ctx, creds)
	if err != nil {
		m.setState(Anonymous)
		return api.Identity{}, err
	}

	m.client.SetToken(resp.Token)
	if err := m.establish(ctx, resp.Token, resp.Identity); err != nil {
		return api.Identity{}, err
	}
	return resp.Identity, nil
}

// Register creates the account, then immediately executes the login
// transition with the new credentials. It is not a separate state.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (api.Identity, error) {
	if err := m.client.SignUp(ctx, req); err != nil {
		return api.Identity{}, err
	}
	return m.Login(ctx, api.Credentials{Username: req.Username, Password: req.Password})
}

// Logout clears the session and its durable copies.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
}

// Invalidate is the global 401 teardown: any unauthorized response from any
// endpoint forcibly clears the session. Safe to call repeatedly.
func (m *Manager) Invalidate() {
	m.clear(context.Background())
}

// establish records the authenticated identity and writes token + snapshot
// through to durable storage.
func (m *Manager) establish(ctx context.Context, token string, identity api.Identity) error {
	role, err := ParseRole(identity.Role)
	if err != nil {
		m.clear(ctx)
		return fmt.Errorf("server identity: %w", err)
	}

	m.mu.Lock()
	m.state = Authenticated
	m.identity = identity
	m.role = role
	m.mu.Unlock()

	if data, err := json.Marshal(token); err == nil {
		if err := m.store.Set(ctx, storage.KeyToken, data); err != nil {
			slog.Warn("persisting token failed", "error", err)
		}
	}
	if data, err := json.Marshal(identity); err == nil {
		if err := m.store.Set(ctx, storage.KeyIdentity, data); err != nil {
			slog.Warn("persisting identity failed", "error", err)
		}
	}
	return nil
}

func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.state = Anonymous
	m.identity = api.Identity{}
	m.role = 0
	m.mu.Unlock()

	m.client.ClearToken()
	if err := m.store.Delete(ctx, storage.KeyToken); err != nil {
		slog.Warn("clearing stored token failed", "error", err)
	}
	if err := m.store.Delete(ctx, storage.KeyIdentity); err != nil {
		slog.Warn("clearing stored identity failed", "error", err)
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Identity returns the authenticated identity, if any.
func (m *Manager) Identity() (api.Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity, m.state == Authenticated
}

// Role returns the session role, if authenticated.
func (m *Manager) Role() (Role, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.role, m.state == Authenticated
}

func (m *Manager) hasRole(r Role) bool {
	role, ok := m.Role()
	return ok && role == r
}

// IsStudent reports whether the session belongs to a student.
func (m *Manager) IsStudent() bool { return m.hasRole(RoleStudent) }

// IsInstructor reports whether the session belongs to an instructor.
func (m *Manager) IsInstructor() bool { return m.hasRole(RoleInstructor) }

// IsAdmin reports whether the session belongs to an admin.
func (m *Manager) IsAdmin() bool { return m.hasRole(RoleAdmin) }
