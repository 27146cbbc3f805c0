// Package api is a minimal client for the RecipeHub service endpoints the
// CLI exposes. Requests go through the injected HTTP client, which attaches
// the session's bearer token.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnauthorized is returned when the server rejects the request's
// credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Recipe is a recipe list entry.
type Recipe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Servings    int       `json:"servings"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Client calls the RecipeHub API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates an API client using the given HTTP client.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpc: httpc}
}

// List fetches the caller's recipes.
func (c *Client) List(ctx context.Context) ([]Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/recipes", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var recipes []Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipe list: %w", err)
	}

	return recipes, nil
}
