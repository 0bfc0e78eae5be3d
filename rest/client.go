// Package rest is a thin JSON client for the listing endpoints that feed
// pagectl. It builds requests, attaches a bearer credential, decodes JSON
// bodies and turns non-2xx responses into *Error values labeled by
// operation.
package rest

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

	"github.com/rs/zerolog"

	"github.com/Alp4ka/pagectl"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

type Option func(*Client)

// WithToken sets the bearer credential sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request tracing. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("cannot create client: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("cannot create client: base url '%s' must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FetchPage requests page number page (zero-based) of size elements from
// path and decodes the page descriptor. size is normalized with
// pagectl.NormalizePageSize before it is sent.
func FetchPage[T any](ctx context.Context, c *Client, path string, page, size int) (pagectl.Page[T], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(max(page, 0)))
	query.Set("size", strconv.Itoa(pagectl.NormalizePageSize(size)))

	var ret pagectl.Page[T]
	if err := c.do(ctx, OpFetch, http.MethodGet, path, query, nil, &ret); err != nil {
		return pagectl.Page[T]{}, err
	}

	return ret, nil
}

// Create POSTs in to path and decodes the response into out, if out is not nil.
func (c *Client) Create(ctx context.Context, path string, in any, out any) error {
	return c.do(ctx, OpCreate, http.MethodPost, path, nil, in, out)
}

// Update PUTs in to path and decodes the response into out, if out is not nil.
func (c *Client) Update(ctx context.Context, path string, in any, out any) error {
	return c.do(ctx, OpUpdate, http.MethodPut, path, nil, in, out)
}

// Delete sends a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, OpDelete, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, op Op, method, path string, query url.Values, in any, out any) error {
	req, err := c.newRequest(ctx, method, path, query, in)
	if err != nil {
		return fmt.Errorf("%s: %w", op.DefaultMessage(), err)
	}

	logger := c.logger.With().Str("op", string(op)).Str("method", method).Str("url", req.URL.String()).Logger()
	logger.Debug().Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op.DefaultMessage(), err)
	}
	defer resp.Body.Close()

	logger.Debug().Int("status", resp.StatusCode).Msg("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newError(op, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: failed to decode response: %w", op.DefaultMessage(), err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, in any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}
