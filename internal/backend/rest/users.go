package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.UserProfile, error) {
	var users []model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, params backend.CreateUserParams) (model.UserProfile, error) {
	var user model.UserProfile
	if err := c.do(ctx, http.MethodPost, "/users", nil, params, &user); err != nil {
		return model.UserProfile{}, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, params backend.UpdateUserParams) (model.UserProfile, error) {
	var user model.UserProfile
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, params, &user); err != nil {
		if apperr.IsNotFound(err) {
			return model.UserProfile{}, apperr.ErrUserNotFound.WrapParent(err)
		}
		return model.UserProfile{}, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
	if apperr.IsNotFound(err) {
		return apperr.ErrUserNotFound.WrapParent(err)
	}
	return err
}
