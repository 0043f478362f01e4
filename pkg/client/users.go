package client

import (
	"context"

	"promanager_backend/internal/models"
	"promanager_backend/internal/services/dto"
)

// Register creates a user account. The server returns 200 with no body.
func (c *Client) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return c.do(ctx, "POST", "/user/create", req, nil)
}

// Login exchanges credentials for a JWT and stores it on the client.
func (c *Client) Login(ctx context.Context, authentication, password string) (string, error) {
	var resp dto.TokenResponse
	err := c.do(ctx, "POST", "/user/login", &dto.LoginRequest{
		Authentication: authentication,
		Password:       password,
	}, &resp)
	if err != nil {
		return "", err
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}

// Profile fetches the authenticated user's own profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, "GET", "/user/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// FetchAllUsers lists every registered user.
func (c *Client) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, "GET", "/user/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateUser applies a partial profile update for the given user id.
func (c *Client) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest) error {
	return c.do(ctx, "PUT", "/user/update/"+userID, req, nil)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, "DELETE", "/user/delete/"+userID, nil, nil)
}

// SendRecoveryCode asks the server to mail the given code to the address.
func (c *Client) SendRecoveryCode(ctx context.Context, email, code string) error {
	return c.do(ctx, "POST", "/user/recovery", &dto.RecoveryRequest{
		Email:        email,
		RecoveryCode: code,
	}, nil)
}

// UpdatePassword resets the password by email as the final recovery step.
func (c *Client) UpdatePassword(ctx context.Context, email, password string) error {
	return c.do(ctx, "PUT", "/user/update", &dto.UpdatePasswordRequest{
		Email:    email,
		Password: password,
	}, nil)
}
