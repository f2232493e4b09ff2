// Package client is a typed HTTP client for the portfolio API. After Login it
// remembers the bearer token and user in a TokenStore and attaches the token
// to calls that need an identity.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pixel_portfolio/internal/models"
)

const defaultTimeout = 15 * time.Second

// ErrNotLoggedIn is returned by calls that need a token when none is stored.
var ErrNotLoggedIn = errors.New("client: not logged in")

// APIError is a non-2xx response. Message is the server's "error" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to one API base URL, e.g. "http://localhost:8080/api".
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
}

type Option func(*Client)

// WithHTTPClient replaces the default client (15s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithStore replaces the default in-memory session store.
func WithStore(s TokenStore) Option {
	return func(c *Client) {
		if s != nil {
			c.store = s
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		store:   NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostList is one page of posts.
type PostList struct {
	Data       []models.Post     `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. It does not log in; see RegisterAndLogin.
func (c *Client) Register(ctx context.Context, username, password string) (models.PublicUser, error) {
	var out struct {
		User models.PublicUser `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/register", credentials{username, password}, false, &out)
	return out.User, err
}

// Login exchanges credentials for a token and persists token and user.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{username, password}, false, &s); err != nil {
		return Session{}, err
	}
	if err := c.store.Save(s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// RegisterAndLogin is the sign-up flow: create the account, then log in with it.
func (c *Client) RegisterAndLogin(ctx context.Context, username, password string) (Session, error) {
	if _, err := c.Register(ctx, username, password); err != nil {
		return Session{}, err
	}
	return c.Login(ctx, username, password)
}

// Me asks the server who the stored token belongs to.
func (c *Client) Me(ctx context.Context) (models.PublicUser, error) {
	var out struct {
		User models.PublicUser `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, true, &out)
	return out.User, err
}

// Logout forgets token and user. Tokens are stateless, so nothing is sent.
func (c *Client) Logout() error {
	return c.store.Clear()
}

func (c *Client) IsLoggedIn() bool {
	s, err := c.store.Load()
	return err == nil && s.Token != ""
}

// StoredUser returns the user saved at login, or nil.
func (c *Client) StoredUser() *models.PublicUser {
	s, err := c.store.Load()
	if err != nil || s.Token == "" {
		return nil
	}
	u := s.User
	return &u
}

// Posts lists published posts.
func (c *Client) Posts(ctx context.Context, page, limit int) (PostList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("status", models.PostStatusPublished)

	var out PostList
	err := c.do(ctx, http.MethodGet, "/posts?"+q.Encode(), nil, false, &out)
	return out, err
}

// LatestPost returns the newest published post, or nil when there is none.
func (c *Client) LatestPost(ctx context.Context) (*models.Post, error) {
	list, err := c.Posts(ctx, 1, 1)
	if err != nil || len(list.Data) == 0 {
		return nil, err
	}
	return &list.Data[0], nil
}

func (c *Client) Post(ctx context.Context, id int64) (models.Post, error) {
	var out struct {
		Data models.Post `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/posts/"+strconv.FormatInt(id, 10), nil, false, &out)
	return out.Data, err
}

// Projects lists active projects in display order.
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var out struct {
		Data []models.Project `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/projects?status="+models.ProjectStatusActive, nil, false, &out)
	return out.Data, err
}

func (c *Client) Project(ctx context.Context, id int64) (models.Project, error) {
	var out struct {
		Data models.Project `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/projects/"+strconv.FormatInt(id, 10), nil, false, &out)
	return out.Data, err
}

func (c *Client) Settings(ctx context.Context) (map[string]string, error) {
	var out struct {
		Data map[string]string `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/settings", nil, false, &out)
	return out.Data, err
}

func (c *Client) Setting(ctx context.Context, key string) (models.Setting, error) {
	var out struct {
		Data models.Setting `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/settings/"+url.PathEscape(key), nil, false, &out)
	return out.Data, err
}

// Health reports the server status. Any error means the API is unreachable or unhealthy.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/health", nil, false, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, auth bool, dst any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if auth {
		s, err := c.store.Load()
		if err != nil {
			return err
		}
		if s.Token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &APIError{Status: resp.StatusCode, Message: "request failed"}
	}
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}
