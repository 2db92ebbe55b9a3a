package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/onegt/chrms-backend/internal/access"
	"github.com/onegt/chrms-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	mu       sync.Mutex
	identity model.Identity
	failMe   bool
	logouts  int
	meCalls  int
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()

	writeData := func(w http.ResponseWriter, data interface{}) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
	}

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		id := f.identity
		f.mu.Unlock()
		writeData(w, model.LoginResponse{AccessToken: "test-token", User: id})
	})

	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.meCalls++
		id := f.identity
		fail := f.failMe
		f.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer test-token" || fail {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data":  nil,
				"error": map[string]string{"code": "TOKEN_INVALID", "message": "invalid"},
			})
			return
		}
		writeData(w, id)
	})

	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.logouts++
		f.mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":  nil,
			"error": map[string]string{"code": "INTERNAL_ERROR", "message": "boom"},
		})
	})

	return mux
}

func newTestSession(t *testing.T, f *fakeServer) (*Session, *Client) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return NewSession(c), c
}

func TestLoginFetchesFreshIdentity(t *testing.T) {
	f := &fakeServer{identity: model.Identity{
		AssociateID: "a1",
		Email:       "hr@example.com",
		Name:        "HR Person",
		Role:        model.RoleHR,
		Picture:     "https://cdn.example.com/hr.png",
	}}
	s, c := newTestSession(t, f)

	require.NoError(t, s.Login(context.Background(), "hr@example.com", "secret"))

	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, "Bearer test-token", c.AuthHeader())
	assert.Equal(t, "https://cdn.example.com/hr.png", s.CachedPicture())

	id := s.Identity()
	require.NotNil(t, id)
	assert.Equal(t, model.RoleHR, id.Role)
	assert.Equal(t, model.RoleHR, id.OriginalRole)

	// Exactly one identity read: the exchange echo is ignored.
	f.mu.Lock()
	assert.Equal(t, 1, f.meCalls)
	f.mu.Unlock()

	ev := s.Evaluator()
	require.NotNil(t, ev)
	assert.True(t, ev.Flags().IsHR)
	assert.Equal(t, model.TalentRoleAdmin, ev.TalentRole())
}

func TestLoadFromStoreClearsBadToken(t *testing.T) {
	f := &fakeServer{}
	s, c := newTestSession(t, f)
	c.store.SetToken("stale-token")

	err := s.LoadFromStore(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, c.store.Token())
	assert.Nil(t, s.Identity())
	assert.Nil(t, s.Evaluator())
}

func TestLoadFromStoreWithoutToken(t *testing.T) {
	f := &fakeServer{}
	s, _ := newTestSession(t, f)

	require.NoError(t, s.LoadFromStore(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
}

func TestLogoutClearsLocalStateOnRemoteFailure(t *testing.T) {
	f := &fakeServer{identity: model.Identity{
		AssociateID: "a1",
		Email:       "hr@example.com",
		Role:        model.RoleHR,
	}}
	s, c := newTestSession(t, f)
	require.NoError(t, s.Login(context.Background(), "hr@example.com", "secret"))

	err := s.Logout(context.Background())

	assert.Error(t, err, "remote logout failed")
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, c.store.Token())
	assert.Empty(t, s.CachedPicture())
	assert.Nil(t, s.Identity())

	f.mu.Lock()
	assert.Equal(t, 1, f.logouts)
	f.mu.Unlock()
}

func TestMasqueradeKeepsOriginalRole(t *testing.T) {
	f := &fakeServer{identity: model.Identity{
		AssociateID: "a1",
		Email:       "admin@example.com",
		Role:        model.RoleAdmin,
	}}
	s, _ := newTestSession(t, f)
	require.NoError(t, s.Login(context.Background(), "admin@example.com", "secret"))

	s.SwitchRole(model.RoleAssociate)
	id := s.Identity()
	require.NotNil(t, id)
	assert.Equal(t, model.RoleAssociate, id.Role)
	assert.Equal(t, model.RoleAdmin, id.OriginalRole)
	assert.False(t, s.Evaluator().Flags().IsAdmin)

	// A second switch still remembers where we started.
	s.SwitchRole(model.RoleHR)
	id = s.Identity()
	assert.Equal(t, model.RoleAdmin, id.OriginalRole)

	s.RestoreRole()
	id = s.Identity()
	assert.Equal(t, model.RoleAdmin, id.Role)
	assert.True(t, s.Evaluator().Flags().IsAdmin)
}

func TestMasqueradeSurvivesRefresh(t *testing.T) {
	f := &fakeServer{identity: model.Identity{
		AssociateID: "a1",
		Email:       "admin@example.com",
		Role:        model.RoleAdmin,
	}}
	s, _ := newTestSession(t, f)
	require.NoError(t, s.Login(context.Background(), "admin@example.com", "secret"))

	s.SwitchRole(model.RoleAssociate)
	require.NoError(t, s.Refresh(context.Background()))

	id := s.Identity()
	require.NotNil(t, id)
	assert.Equal(t, model.RoleAssociate, id.Role)
	assert.Equal(t, model.RoleAdmin, id.OriginalRole)
}

func TestRefreshPicksUpRoleChange(t *testing.T) {
	f := &fakeServer{identity: model.Identity{
		AssociateID: "a1",
		Email:       "user@example.com",
		Role:        model.RoleAssociate,
	}}
	s, _ := newTestSession(t, f)
	require.NoError(t, s.Login(context.Background(), "user@example.com", "secret"))

	f.mu.Lock()
	f.identity.Role = model.RoleHR
	f.mu.Unlock()

	// /auth/me responses are cached for the TTL window; a refresh after an
	// invalidation must observe the new role.
	s.client.InvalidateCache()
	require.NoError(t, s.Refresh(context.Background()))

	id := s.Identity()
	assert.Equal(t, model.RoleHR, id.Role)
	assert.Equal(t, model.RoleHR, id.OriginalRole)
	assert.True(t, s.Evaluator().Flags().IsHR)
}

func TestEvaluatorMatchesAccessPolicy(t *testing.T) {
	f := &fakeServer{identity: model.Identity{
		AssociateID: "a1",
		Email:       "dev@example.com",
		Role:        model.RoleAssociate,
		Designation: "Developer",
	}}
	s, _ := newTestSession(t, f)
	require.NoError(t, s.Login(context.Background(), "dev@example.com", "secret"))

	ev := s.Evaluator()
	require.NotNil(t, ev)
	assert.True(t, ev.CanAccess(access.ModuleTimesheets))
	assert.False(t, ev.CanAccess(access.ModuleAssets))
}
