// Package client is the Go consumer of the HTTP API: typed calls, the listing state
// and the debounced search input used by the admin console.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/validation"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
)

// FetchError is a non-2xx answer from the API.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the API at baseURL using the token held by sess.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *Session
}

// New builds a client; a nil hc gets a 15s-timeout default, a nil sess a fresh one.
func New(baseURL string, hc *http.Client, sess *Session) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	if sess == nil {
		sess = &Session{}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc, sess: sess}
}

// Session returns the injected session state.
func (c *Client) Session() *Session { return c.sess }

// Login validates the credentials locally with the same rules as the server, then
// stores the issued token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	c.sess.Set(out.Token, out.User)
	return &out, nil
}

// FetchUsers requests one page of the admin listing. page, sortBy and sortOrder are
// always sent; search only when non-empty.
func (c *Client) FetchUsers(ctx context.Context, q core.QueryState) (*models.UserListResponse, error) {
	var out models.UserListResponse
	if err := c.do(ctx, http.MethodGet, "/api/users?"+q.Values().Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject validates req locally before sending it.
func (c *Client) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var out models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProjects returns the caller's projects, most recently updated first.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return ewrap.Wrap(err, "encode request")
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return ewrap.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.sess.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ewrap.Wrap(err, "request failed").WithMetadata("path", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ewrap.Wrap(err, "decode response").WithMetadata("path", path)
	}
	return nil
}

// errorMessage pulls "error" or "message" out of an error body, falling back to the status text.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(b, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
