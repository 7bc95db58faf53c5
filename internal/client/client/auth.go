package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		Body:     models.LoginRequest{Email: email, Password: password},
		SkipAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     "/auth/register",
		Body:     req,
		SkipAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user the current token belongs to.
func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/auth/me"}, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
