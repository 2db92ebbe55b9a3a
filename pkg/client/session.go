package client

import (
	"context"
	"sync"

	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
)

// State is the lifecycle of a Session.
type State string

const (
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Session tracks the signed-in identity. It owns the token store, keeps the
// access evaluator in step with the identity, and sequences identity fetches
// so a stale response can never overwrite a newer one.
type Session struct {
	client *Client

	mu          sync.Mutex
	state       State
	identity    *model.Identity
	evaluator   *access.Evaluator
	generation  uint64
	cancelFetch context.CancelFunc
}

// NewSession creates a Session over the given client. It starts in the
// loading state; call LoadFromStore to resolve it.
func NewSession(c *Client) *Session {
	return &Session{client: c, state: StateLoading}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns a copy of the current identity, or nil when signed out.
func (s *Session) Identity() *model.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Evaluator returns the access evaluator for the current identity, or nil
// when signed out. It is rebuilt only when the identity changes.
func (s *Session) Evaluator() *access.Evaluator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluator
}

// AuthHeader returns the Authorization header value, or "" when signed out.
func (s *Session) AuthHeader() string {
	return s.client.AuthHeader()
}

// CachedPicture returns the profile picture URL persisted alongside the
// token. Unlike Identity, it is available while the session is still loading.
func (s *Session) CachedPicture() string {
	return s.client.store.Picture()
}

// LoadFromStore resolves the loading state from a persisted token. A stored
// token that no longer validates is discarded, leaving the session
// anonymous.
func (s *Session) LoadFromStore(ctx context.Context) error {
	if s.client.store.Token() == "" {
		s.setAnonymous()
		return nil
	}

	if err := s.fetchIdentity(ctx); err != nil {
		s.client.store.Clear()
		s.setAnonymous()
		return err
	}
	return nil
}

// Login exchanges email + password for a token, then re-fetches the identity
// so derived flags always reflect the server's current view of the role.
func (s *Session) Login(ctx context.Context, email, password string) error {
	return s.exchange(ctx, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// LoginWithGoogle exchanges a Google ID token credential the same way.
func (s *Session) LoginWithGoogle(ctx context.Context, credential string) error {
	return s.exchange(ctx, "/api/v1/auth/google", map[string]string{
		"credential": credential,
	})
}

// Logout revokes the server-side session. Local state is cleared whether or
// not the remote call succeeds; the error is informational.
func (s *Session) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/api/v1/auth/logout", nil, nil)

	s.mu.Lock()
	if s.cancelFetch != nil {
		s.cancelFetch()
		s.cancelFetch = nil
	}
	s.mu.Unlock()

	s.client.store.Clear()
	s.client.InvalidateCache()
	s.setAnonymous()
	return err
}

// SwitchRole masquerades as another role. The original role is kept so
// RestoreRole can recover it; switching twice does not lose it.
func (s *Session) SwitchRole(role model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return
	}
	s.identity.Role = role
	s.rebuildEvaluator()
}

// RestoreRole reverts a masquerade to the authenticated role.
func (s *Session) RestoreRole() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return
	}
	s.identity.Role = s.identity.OriginalRole
	s.rebuildEvaluator()
}

// Refresh re-fetches the identity from the server.
func (s *Session) Refresh(ctx context.Context) error {
	return s.fetchIdentity(ctx)
}

func (s *Session) exchange(ctx context.Context, path string, body interface{}) error {
	var resp model.LoginResponse
	if err := s.client.Post(ctx, path, body, &resp); err != nil {
		return err
	}
	s.client.store.SetToken(resp.AccessToken)

	// The login echo is ignored in favor of a fresh identity read.
	return s.fetchIdentity(ctx)
}

// fetchIdentity loads /auth/me. Each call supersedes any in-flight one: the
// older request is cancelled and, even if it races to completion, its result
// is dropped by the generation check.
func (s *Session) fetchIdentity(ctx context.Context) error {
	s.mu.Lock()
	if s.cancelFetch != nil {
		s.cancelFetch()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancelFetch = cancel
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var identity model.Identity
	err := s.client.Get(fetchCtx, "/api/v1/auth/me", &identity)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil // Superseded by a newer fetch.
	}
	s.cancelFetch = nil

	if err != nil {
		return err
	}

	// An active masquerade survives refreshes; otherwise the original role
	// is re-pinned to whatever the server reports now.
	if s.identity != nil && s.identity.OriginalRole != "" && s.identity.Role != s.identity.OriginalRole {
		identity.OriginalRole = s.identity.OriginalRole
		identity.Role = s.identity.Role
	} else {
		identity.OriginalRole = identity.Role
	}

	s.identity = &identity
	s.state = StateAuthenticated
	s.client.store.SetPicture(identity.Picture)
	s.rebuildEvaluator()
	return nil
}

func (s *Session) setAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.evaluator = nil
	s.state = StateAnonymous
}

// rebuildEvaluator must be called with the mutex held.
func (s *Session) rebuildEvaluator() {
	if s.identity == nil {
		s.evaluator = nil
		return
	}
	id := *s.identity
	s.evaluator = access.NewEvaluator(&id)
}
