// Package sdk provides a typed HTTP client for the task management API.
// Unauthenticated calls hang off Client; task operations hang off a
// Session created from a token pair.
package sdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to a task management API instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Register creates a new account and returns its initial token pair.
func (c *Client) Register(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", credentialsRequest{
		Email:    email,
		Password: password,
	}, &pair)
	return pair, err
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", credentialsRequest{
		Email:    email,
		Password: password,
	}, &pair)
	return pair, err
}

// Refresh exchanges a refresh token for a fresh token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	var pair TokenPair
	err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", "", refreshRequest{
		RefreshToken: refreshToken,
	}, &pair)
	return pair, err
}

// Logout tells the server the client is discarding its tokens.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", "", nil, nil)
}

// Session wraps a Client with a token pair for authenticated calls.
func (c *Client) Session(pair TokenPair) *Session {
	return &Session{client: c, tokens: pair}
}
