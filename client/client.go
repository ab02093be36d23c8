// Package client talks to a significado server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mistakeknot/significado/internal/core"
	"github.com/mistakeknot/significado/internal/names"
)

// SessionCookie must match the server's cookie name.
const SessionCookie = "significado_session"

// ErrNoSearch is returned by Result when the session has not searched yet.
var ErrNoSearch = errors.New("no search for session")

type (
	Analysis = names.Analysis
	Event    = core.Event
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("significado: status %d", e.Status)
	}
	return fmt.Sprintf("significado: status %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	APIKey  string

	mu      sync.RWMutex
	session string
}

type Option func(*Client)

func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.APIKey = strings.TrimSpace(key)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.HTTP = httpClient
		}
	}
}

// WithSession resumes an existing browser session.
func WithSession(id string) Option {
	return func(c *Client) {
		c.session = strings.TrimSpace(id)
	}
}

type SearchResponse struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
}

type Result struct {
	Name     string `json:"name"`
	Report   string `json:"report"`
	Fallback bool   `json:"fallback"`
}

type FallbackReport struct {
	Name   string `json:"name"`
	Report string `json:"report"`
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session is the id the server assigned on the first Search.
func (c *Client) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Search remembers name as the session's current search.
func (c *Client) Search(ctx context.Context, name string) (SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search", map[string]string{"name": name}, &out); err != nil {
		return SearchResponse{}, err
	}
	c.mu.Lock()
	c.session = out.SessionID
	c.mu.Unlock()
	return out, nil
}

// Result fetches the report for the session's last search.
func (c *Client) Result(ctx context.Context) (Result, error) {
	var out Result
	err := c.do(ctx, http.MethodGet, "/api/result", nil, &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return Result{}, ErrNoSearch
	}
	return out, err
}

func (c *Client) Meaning(ctx context.Context, name string) (Analysis, error) {
	var out Analysis
	err := c.do(ctx, http.MethodGet, "/api/meaning/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c *Client) Fallback(ctx context.Context, name string) (FallbackReport, error) {
	var out FallbackReport
	err := c.do(ctx, http.MethodGet, "/api/meaning/"+url.PathEscape(name)+"/fallback", nil, &out)
	return out, err
}

// Image downloads the PNG card for name along with its suggested filename.
func (c *Client) Image(ctx context.Context, name string) ([]byte, string, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/meaning/"+url.PathEscape(name)+"/image", nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, "", err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	filename := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return data, filename, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.applyHeaders(req)
	return c.HTTP.Do(req)
}

func (c *Client) applyHeaders(req *http.Request) {
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	if s := c.Session(); s != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: s})
	}
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if json.NewDecoder(resp.Body).Decode(&body) == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
