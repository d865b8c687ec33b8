// Package api implements the authenticated request wrapper around the
// user-management REST backend. Every call is a single attempt: no retry,
// no backoff, no caching. Bodies are JSON; the credential travels in the
// Authorization header exactly as the login endpoint returned it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/common"
)

// httpClient is the subset of *http.Client the wrapper needs. Kept as an
// interface so tests can inject failures.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the remote surface the services program against.
type Client interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, name, email, password string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error)
	ListUsers(ctx context.Context) ([]models.ManagedUser, error)
	AddUser(ctx context.Context, name, email string) (models.ManagedUser, error)
	DeleteUser(ctx context.Context, id int64) error
	SetCredential(credential string)
}

// LoginResult is the successful login response body.
type LoginResult struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
	Type  string `json:"type"`
}

// Credential returns the Authorization header value, "{type} {token}".
func (r LoginResult) Credential() string {
	return r.Type + " " + r.Token
}

// HTTPClient talks to the backend over HTTP/JSON.
type HTTPClient struct {
	client     httpClient
	baseURL    url.URL
	credential string
}

// NewHTTPClient wraps client for the backend rooted at baseURL
// (e.g. http://localhost:8082/api/auth).
func NewHTTPClient(client httpClient, baseURL url.URL) *HTTPClient {
	return &HTTPClient{client: client, baseURL: baseURL}
}

// SetCredential installs (or removes, with "") the stored credential that
// subsequent authenticated calls attach.
func (c *HTTPClient) SetCredential(credential string) {
	c.credential = credential
}

// do performs one round trip and maps the outcome:
//   - transport failure   -> common.ErrUnavailable
//   - HTTP 401            -> common.ErrUnauthorized (caller clears the session)
//   - other non-2xx       -> *BackendError carrying the body text
//   - 2xx                 -> response body bytes
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authenticated bool) ([]byte, error) {
	target := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if authenticated {
		req.Header.Set(common.AuthorizationHeader, c.credential)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", common.ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, common.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	return raw, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "login", map[string]string{
		"email":    email,
		"password": password,
	}, false)
	if err != nil {
		return LoginResult{}, err
	}

	var res LoginResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return LoginResult{}, fmt.Errorf("invalid login response: %w", err)
	}
	return res, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	_, err := c.do(ctx, http.MethodPost, "register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, false)
	return err
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "forgot-password", map[string]string{
		"email": email,
	}, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "reset-password", map[string]string{
		"email":       email,
		"otp":         otp,
		"newPassword": newPassword,
	}, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.ManagedUser, error) {
	raw, err := c.do(ctx, http.MethodGet, "users/list", nil, true)
	if err != nil {
		return nil, err
	}

	var users []models.ManagedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("invalid user list response: %w", err)
	}
	return users, nil
}

func (c *HTTPClient) AddUser(ctx context.Context, name, email string) (models.ManagedUser, error) {
	raw, err := c.do(ctx, http.MethodPost, "users/add", map[string]string{
		"name":  name,
		"email": email,
	}, true)
	if err != nil {
		return models.ManagedUser{}, err
	}

	var user models.ManagedUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.ManagedUser{}, fmt.Errorf("invalid add user response: %w", err)
	}
	return user, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "users/delete/"+strconv.FormatInt(id, 10), nil, true)
	return err
}
