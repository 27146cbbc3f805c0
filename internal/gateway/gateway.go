// Package gateway is the HTTP client for the RecipeHub identity API. It
// performs login and signup round trips and translates provider error
// codes into the stable kinds the rest of the client branches on.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	loginPath  = "/v1/auth/login"
	signupPath = "/v1/auth/signup"
)

// Envelope is a successful authentication response. ExpiresIn is the
// token's remaining lifetime in seconds at issue time.
type Envelope struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	IDToken   string `json:"id_token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Config holds gateway client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// MaxTries bounds transient-failure retries. RetryInterval seeds the
	// exponential backoff between them.
	MaxTries      uint
	RetryInterval time.Duration
}

// Client calls the identity API. Transient transport failures (network
// errors, 5xx) are retried with exponential backoff; authentication
// outcomes are terminal and never retried here or anywhere above.
type Client struct {
	baseURL       string
	maxTries      uint
	retryInterval time.Duration
	httpc         *http.Client
}

// NewClient creates a gateway client with the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 3
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 500 * time.Millisecond
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		maxTries:      cfg.MaxTries,
		retryInterval: cfg.RetryInterval,
		httpc:         &http.Client{Timeout: cfg.Timeout},
	}
}

// Login exchanges an email and password for a credential envelope.
func (c *Client) Login(ctx context.Context, email, password string) (Envelope, error) {
	return c.authenticate(ctx, loginPath, email, password)
}

// Signup registers a new account and returns its credential envelope.
func (c *Client) Signup(ctx context.Context, email, password string) (Envelope, error) {
	return c.authenticate(ctx, signupPath, email, password)
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (Envelope, error) {
	body, err := json.Marshal(authRequest{Email: email, Password: password})
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal auth request: %w", err)
	}

	operation := func() (Envelope, error) {
		return c.post(ctx, path, body)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval

	env, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil {
		return Envelope{}, err
	}
	return env, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Envelope{}, backoff.Permanent(fmt.Errorf("failed to build auth request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("auth request failed, will retry")
		return Envelope{}, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to read auth response: %w", err)
	}

	switch {
	case resp.StatusCode >= 500:
		log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("auth provider error, will retry")
		return Envelope{}, fmt.Errorf("auth provider returned status %d", resp.StatusCode)

	case resp.StatusCode >= 400:
		var errResp errorResponse
		if err := json.Unmarshal(data, &errResp); err != nil || errResp.Error.Message == "" {
			return Envelope{}, backoff.Permanent(&Error{kind: ErrUnknown, StatusCode: resp.StatusCode})
		}
		return Envelope{}, backoff.Permanent(&Error{
			kind:       mapProviderCode(errResp.Error.Message),
			Code:       errResp.Error.Message,
			StatusCode: resp.StatusCode,
		})
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, backoff.Permanent(fmt.Errorf("failed to parse auth response: %w", err))
	}
	if env.IDToken == "" || env.ExpiresIn <= 0 {
		return Envelope{}, backoff.Permanent(&Error{kind: ErrUnknown, StatusCode: resp.StatusCode})
	}

	return env, nil
}
