package flow_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/dispatch"
	"github.com/vats147/Inventory-mobile-app/internal/flow"
	"github.com/vats147/Inventory-mobile-app/internal/model"
	"github.com/vats147/Inventory-mobile-app/internal/session"
	"github.com/vats147/Inventory-mobile-app/pkg/validator"
)

// fakeAuth is the live backend the login flow talks to.
type fakeAuth struct {
	backend.Auth

	loginCalls  int
	logoutCalls int
	session     model.Session
	err         error
}

func (f *fakeAuth) Login(context.Context, model.Credentials) (model.Session, error) {
	f.loginCalls++
	if f.err != nil {
		return model.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.err
}

func newLoginFlow(t *testing.T, live backend.Auth) (*flow.Login, *session.Store) {
	t.Helper()

	store, err := session.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	return flow.NewLogin(store, live, v, slog.New(slog.DiscardHandler)), store
}

func TestLoginRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist the session on success", func(t *testing.T) {
		live := &fakeAuth{session: model.Session{
			Token: "tok-123",
			User:  model.UserProfile{ID: "u1", Username: "clerk", Role: model.RoleStaff},
		}}
		login, store := newLoginFlow(t, live)

		sess, err := login.Run(ctx, "clerk@offlicense.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", sess.Token)

		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)

		user, ok, err := store.User()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "u1", user.ID)

		on, err := store.DemoMode()
		require.NoError(t, err)
		assert.False(t, on, "a real login must not flip the demo flag")
	})

	t.Run("Should reject empty credentials before any network call", func(t *testing.T) {
		live := &fakeAuth{}
		login, _ := newLoginFlow(t, live)

		_, err := login.Run(ctx, "", "")
		assert.True(t, apperr.IsValidation(err))
		assert.Zero(t, live.loginCalls)
	})

	t.Run("Should pass an unreachable backend through for the demo offer", func(t *testing.T) {
		live := &fakeAuth{err: apperr.ErrBackendUnavailable}
		login, store := newLoginFlow(t, live)

		_, err := login.Run(ctx, "clerk@offlicense.com", "secret")
		require.Error(t, err)
		assert.True(t, apperr.IsUnavailable(err))

		token, err := store.Token()
		require.NoError(t, err)
		assert.Empty(t, token, "a failed login must not persist anything")
	})
}

func TestEnterDemoMode(t *testing.T) {
	ctx := context.Background()

	live := &fakeAuth{err: apperr.ErrBackendUnavailable}
	login, store := newLoginFlow(t, live)

	sess, err := login.EnterDemoMode(ctx, "shopadmin@offlicense.com")
	require.NoError(t, err)
	assert.Contains(t, sess.Token, "demo-token-")
	assert.Equal(t, model.RoleAdmin, sess.User.Role)

	t.Run("Should persist session and flag", func(t *testing.T) {
		on, err := store.DemoMode()
		require.NoError(t, err)
		assert.True(t, on)

		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, sess.Token, token)
	})

	t.Run("Dispatch now routes to the fixture", func(t *testing.T) {
		demoAuth := &fakeAuth{}
		selected, err := dispatch.Select(store,
			backend.Backend{Auth: demoAuth},
			backend.Backend{Auth: live})
		require.NoError(t, err)
		assert.Same(t, demoAuth, selected.Auth)
		assert.Zero(t, live.loginCalls, "no network attempt was made")
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Should clear the session but keep the demo flag", func(t *testing.T) {
		live := &fakeAuth{}
		login, store := newLoginFlow(t, live)

		_, err := login.EnterDemoMode(ctx, "clerk")
		require.NoError(t, err)

		require.NoError(t, login.Logout(ctx, live))
		assert.Equal(t, 1, live.logoutCalls)

		token, err := store.Token()
		require.NoError(t, err)
		assert.Empty(t, token)

		on, err := store.DemoMode()
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("A failing backend logout still clears the store", func(t *testing.T) {
		live := &fakeAuth{err: apperr.ErrBackendUnavailable}
		login, store := newLoginFlow(t, live)

		require.NoError(t, store.SetToken("tok"))
		require.NoError(t, login.Logout(ctx, live))

		token, err := store.Token()
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}
