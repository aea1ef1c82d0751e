package player

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hilthontt/playbutton/internal/infrastructure/httpclient"
)

const (
	DefaultPath      = "/play"
	DefaultUserAgent = "playbutton"
)

// HTTPDoer is satisfied by [*http.Client] and by test doubles.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type MiddlewareNext = func(*http.Request) (*http.Response, error)

// Middleware wraps a single round trip. The first registered middleware is
// the outermost one.
type Middleware = func(*http.Request, MiddlewareNext) (*http.Response, error)

type requestConfig struct {
	BaseURL     *url.URL
	Path        string
	UserAgent   string
	HTTPDoer    HTTPDoer
	Middlewares []Middleware
}

type Option func(*requestConfig) error

func defaultRequestConfig() *requestConfig {
	return &requestConfig{
		Path:      DefaultPath,
		UserAgent: DefaultUserAgent,
	}
}

func WithBaseURL(base string) Option {
	return func(r *requestConfig) error {
		u, err := url.Parse(strings.TrimSpace(base))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
		}
		if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
		}
		r.BaseURL = u
		return nil
	}
}

func WithPath(path string) Option {
	return func(r *requestConfig) error {
		if path = strings.TrimSpace(path); path != "" {
			r.Path = path
		}
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(r *requestConfig) error {
		r.UserAgent = ua
		return nil
	}
}

func WithHTTPDoer(doer HTTPDoer) Option {
	return func(r *requestConfig) error {
		if doer == nil {
			return ErrNilHTTPDoer
		}
		r.HTTPDoer = doer
		return nil
	}
}

func WithMiddleware(middlewares ...Middleware) Option {
	return func(r *requestConfig) error {
		r.Middlewares = append(r.Middlewares, middlewares...)
		return nil
	}
}

func (r *requestConfig) endpoint() string {
	return r.BaseURL.JoinPath(r.Path).String()
}

func (r *requestConfig) doer() HTTPDoer {
	if r.HTTPDoer == nil {
		return httpclient.New(httpclient.DefaultConfig())
	}
	return r.HTTPDoer
}
