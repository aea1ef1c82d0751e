package player

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client issues the play request against a remote sound player. It adds no
// retries and no timeout of its own.
type Client struct {
	endpoint  string
	userAgent string
	doer      HTTPDoer
	handler   MiddlewareNext
}

func NewClient(opts ...Option) (*Client, error) {
	cfg := defaultRequestConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.BaseURL == nil {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		endpoint:  cfg.endpoint(),
		userAgent: cfg.UserAgent,
		doer:      cfg.doer(),
	}
	c.handler = chain(c.doer.Do, cfg.Middlewares)

	return c, nil
}

func chain(final MiddlewareNext, middlewares []Middleware) MiddlewareNext {
	handler := final
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw := middlewares[i]
		next := handler
		handler = func(r *http.Request) (*http.Response, error) {
			return mw(r, next)
		}
	}
	return handler
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Play sends GET to the play endpoint and returns the body as text. Any HTTP
// status counts as a response; only transport and body read failures are
// errors. Invalid UTF-8 is replaced rather than rejected.
func (c *Client) Play(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build play request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.handler(req)
	if err != nil {
		return "", fmt.Errorf("play request: %w", err)
	}
	if resp == nil || resp.Body == nil {
		return "", ErrNilResponse
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read play response: %w", err)
	}

	return strings.ToValidUTF8(string(body), "�"), nil
}
