package client

import (
	"context"
	"net/url"

	"promanager_backend/internal/models"
	"promanager_backend/internal/services/dto"
)

// FetchPreferences gets a user's stored preferences.
func (c *Client) FetchPreferences(ctx context.Context, userID string) (*models.Preferences, error) {
	var resp struct {
		Preferences models.Preferences `json:"preferences"`
	}
	if err := c.do(ctx, "GET", "/preferences/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Preferences, nil
}

// CreatePreferences stores theme and language for a user.
func (c *Client) CreatePreferences(ctx context.Context, userID, theme, language string) error {
	return c.do(ctx, "POST", "/preferences/"+url.PathEscape(userID), &dto.PreferencesRequest{
		Theme:    theme,
		Language: language,
	}, nil)
}

// UpdatePreferences overwrites a user's preferences.
func (c *Client) UpdatePreferences(ctx context.Context, userID, theme, language string) error {
	return c.do(ctx, "PUT", "/preferences/"+url.PathEscape(userID), &dto.PreferencesRequest{
		Theme:    theme,
		Language: language,
	}, nil)
}

// EnsurePreferences fetches the user's preferences, creating the defaults
// (dark theme, English) when none exist yet. This mirrors the first-launch
// behavior of the original client.
func (c *Client) EnsurePreferences(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := c.FetchPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}
	if err := c.CreatePreferences(ctx, userID, models.DefaultTheme, models.DefaultLanguage); err != nil {
		return nil, err
	}
	return &models.Preferences{
		UserID:   userID,
		Theme:    models.DefaultTheme,
		Language: models.DefaultLanguage,
	}, nil
}
