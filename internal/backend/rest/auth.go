package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vats147/Inventory-mobile-app/internal/model"
)

// Login walks the candidate endpoints in order and keeps the first success.
// When every candidate fails the last failure surfaces; there is no retry
// with delay, each candidate is attempted exactly once.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	endpoints := c.loginEndpoints
	if len(endpoints) == 0 {
		endpoints = []string{"/users/login"}
	}

	var lastErr error
	for _, endpoint := range endpoints {
		var sess model.Session
		err := c.do(ctx, http.MethodPost, endpoint, nil, creds, &sess)
		if err == nil {
			return sess, nil
		}

		c.logger.WarnContext(ctx, "login endpoint failed",
			slog.String("endpoint", endpoint), slog.Any("error", err))
		lastErr = err
	}

	return model.Session{}, lastErr
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/users/logout", nil, nil, nil)
}

func (c *Client) Profile(ctx context.Context) (model.UserProfile, error) {
	var user model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return model.UserProfile{}, err
	}
	return user, nil
}
