// Package client is a Go SDK for the CHRMS API. It wraps the HTTP surface
// with typed calls, bearer-token handling, and a short-lived response cache,
// and tracks the signed-in identity through a Session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/onegt/chrms-backend/pkg/apicache"
)

// TokenStore persists the access token between runs, along with the profile
// picture URL so an avatar can render before the identity fetch completes.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Picture() string
	SetPicture(url string)
	Clear()
}

// MemoryStore is a TokenStore backed by process memory.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	picture string
}

func (m *MemoryStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *MemoryStore) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryStore) Picture() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.picture
}

func (m *MemoryStore) SetPicture(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.picture = url
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.picture = ""
}

// Client is an HTTP client for the CHRMS API.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
	cache   *apicache.Cache
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.store = store }
}

// WithCacheTTL overrides the GET response cache window.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = apicache.New(ttl) }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   &MemoryStore{},
		cache:   apicache.New(apicache.DefaultTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthHeader returns the Authorization header value, or "" when signed out.
func (c *Client) AuthHeader() string {
	token := c.store.Token()
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, e.Code)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Get performs a GET and decodes the data payload into out. Responses are
// served from the cache while fresh; a live response refreshes the entry.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	if data, ok := c.cache.Get(path); ok {
		return json.Unmarshal(data.([]byte), out)
	}

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	c.cache.Set(path, []byte(raw))
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// Post performs a POST with a JSON body and decodes the data payload into
// out. Writes invalidate the whole response cache.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.write(ctx, http.MethodPost, path, body, out)
}

// Patch performs a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.write(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.write(ctx, http.MethodDelete, path, nil, nil)
}

// InvalidateCache drops cached GET responses, selectively or entirely.
func (c *Client) InvalidateCache(paths ...string) {
	c.cache.Clear(paths...)
}

func (c *Client) write(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	raw, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}

	// Any write can change what subsequent reads should see.
	c.cache.Clear()

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := c.AuthHeader(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	return env.Data, nil
}
