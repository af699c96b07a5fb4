// Package flow holds the screen-level logic: login, scanner, products and
// analytics. Flows call one backend bundle, own the transient UI state and
// persist session changes; they never branch on demo mode themselves.
package flow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/backend/demo"
	"github.com/vats147/Inventory-mobile-app/internal/model"
	"github.com/vats147/Inventory-mobile-app/pkg/validator"
)

// SessionWriter is the part of the session store the login flow touches.
type SessionWriter interface {
	SetToken(token string) error
	SetUser(user model.UserProfile) error
	SetDemoMode(on bool) error
	Clear() error
}

type Login struct {
	store    SessionWriter
	live     backend.Auth
	validate validator.Validator
	logger   *slog.Logger
}

func NewLogin(store SessionWriter, live backend.Auth, v validator.Validator, logger *slog.Logger) *Login {
	return &Login{
		store:    store,
		live:     live,
		validate: v,
		logger:   logger.With(slog.String("flow", "login")),
	}
}

// Run validates the credentials, signs in against the live backend and
// persists the resulting session. Callers check the error with
// apperr.IsUnavailable to decide whether to offer demo mode.
func (f *Login) Run(ctx context.Context, email, password string) (model.Session, error) {
	creds := model.Credentials{Email: email, Password: password}
	if err := f.validate.Validate(creds); err != nil {
		return model.Session{}, apperr.ValidationErr.WrapParent(err)
	}

	sess, err := f.live.Login(ctx, creds)
	if err != nil {
		return model.Session{}, err
	}

	if err := f.persist(sess); err != nil {
		return model.Session{}, err
	}

	f.logger.InfoContext(ctx, "signed in",
		slog.String("username", sess.User.Username), slog.String("role", string(sess.User.Role)))
	return sess, nil
}

// EnterDemoMode fabricates a local session and turns the demo flag on. From
// here on, dispatch selection routes every call to the fixture and no
// network attempt is made.
func (f *Login) EnterDemoMode(ctx context.Context, username string) (model.Session, error) {
	sess := demo.FabricateSession(username)

	if err := f.persist(sess); err != nil {
		return model.Session{}, err
	}
	if err := f.store.SetDemoMode(true); err != nil {
		return model.Session{}, fmt.Errorf("persist demo flag: %w", err)
	}

	f.logger.InfoContext(ctx, "entered demo mode", slog.String("username", username))
	return sess, nil
}

// Logout tells the active backend goodbye (best effort) and clears the
// stored token and profile. The demo flag stays as it is.
func (f *Login) Logout(ctx context.Context, active backend.Auth) error {
	if err := active.Logout(ctx); err != nil {
		f.logger.WarnContext(ctx, "backend logout failed", slog.Any("error", err))
	}
	return f.store.Clear()
}

func (f *Login) persist(sess model.Session) error {
	if err := f.store.SetToken(sess.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := f.store.SetUser(sess.User); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}
