// Package jokeapi provides an HTTP client for the JokeAPI service.
package jokeapi

import (
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

	"github.com/tesso57/jestr/internal/application/usecase"
	"github.com/tesso57/jestr/internal/domain/joke"
)

const (
	// DefaultBaseURL is the public JokeAPI endpoint.
	DefaultBaseURL = "https://v2.jokeapi.dev"

	defaultUserAgent = "jestr/1.0"
	maxBodyBytes     = 1 << 20
)

// ErrResponseTooLarge is returned when a response body exceeds the read limit.
var ErrResponseTooLarge = errors.New("response too large")

type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", "application/json")
	}
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return base.RoundTrip(clone)
}

// Client talks to the joke API.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(userAgent) != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each request. Zero disables the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   baseURL,
		userAgent: defaultUserAgent,
		timeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	c.client = &http.Client{
		Transport:     headerTransport{base: c.client.Transport, userAgent: c.userAgent},
		CheckRedirect: c.client.CheckRedirect,
		Jar:           c.client.Jar,
		Timeout:       c.client.Timeout,
	}
	return c
}

// Categories fetches the list of joke categories.
func (c *Client) Categories(ctx context.Context) (joke.CategoryList, error) {
	body, err := c.get(ctx, c.baseURL+"/categories")
	if err != nil {
		return joke.CategoryList{}, err
	}
	var resp categoriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return joke.CategoryList{}, &usecase.NetworkError{Err: fmt.Errorf("decode categories: %w", err)}
	}
	if resp.Error {
		return joke.CategoryList{}, decodeAPIError(http.StatusOK, "200 OK", body)
	}
	return resp.toDomain(), nil
}

// JokesURL builds the request URL for a query.
func (c *Client) JokesURL(q joke.Query) string {
	params := url.Values{}
	params.Set("amount", strconv.Itoa(q.Count))
	if q.Kind != "" {
		params.Set("type", string(q.Kind))
	}
	if blocklist := q.BlocklistParam(); blocklist != "" {
		params.Set("blacklistFlags", blocklist)
	}
	if contains := strings.TrimSpace(q.Contains); contains != "" {
		params.Set("contains", contains)
	}
	return c.baseURL + "/joke/" + url.PathEscape(q.Category) + "?" + params.Encode()
}

// Jokes fetches jokes matching the query.
func (c *Client) Jokes(ctx context.Context, q joke.Query) ([]joke.Joke, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	body, err := c.get(ctx, c.JokesURL(q))
	if err != nil {
		return nil, err
	}

	var resp jokesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &usecase.NetworkError{Err: fmt.Errorf("decode jokes: %w", err)}
	}
	if resp.Error {
		if resp.Code == noMatchCode {
			return []joke.Joke{}, nil
		}
		return nil, decodeAPIError(http.StatusOK, "200 OK", body)
	}

	if resp.Jokes == nil && resp.Type != "" {
		var single jokeDTO
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, &usecase.NetworkError{Err: fmt.Errorf("decode joke: %w", err)}
		}
		return []joke.Joke{single.toDomain()}, nil
	}

	jokes := make([]joke.Joke, len(resp.Jokes))
	for i, dto := range resp.Jokes {
		jokes[i] = dto.toDomain()
	}
	return jokes, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &usecase.NetworkError{Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &usecase.NetworkError{Err: unwrapURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &usecase.NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return nil, &usecase.NetworkError{Err: fmt.Errorf("%w: over %d bytes", ErrResponseTooLarge, maxBodyBytes)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, resp.Status, body)
	}
	return body, nil
}

func decodeAPIError(statusCode int, status string, body []byte) error {
	apiErr := &usecase.APIError{StatusCode: statusCode, Status: status}
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error {
		apiErr.Code = resp.Code
		apiErr.Message = resp.Message
		apiErr.CausedBy = resp.CausedBy
	}
	return apiErr
}

// unwrapURLError drops the "Get <url>:" prefix so users see the cause.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
