package player

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hilthontt/playbutton/internal/infrastructure/logging/logtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingBody) Close() error             { return nil }

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient()
	assert.ErrorIs(t, err, ErrMissingBaseURL)

	_, err = NewClient(WithBaseURL("localhost:8000"))
	assert.ErrorIs(t, err, ErrInvalidBaseURL)

	_, err = NewClient(WithBaseURL("http://localhost:8000"), WithHTTPDoer(nil))
	assert.ErrorIs(t, err, ErrNilHTTPDoer)
}

func TestNewClient_Endpoint(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"default path", []Option{WithBaseURL("http://speaker:8000")}, "http://speaker:8000/play"},
		{"trailing slash", []Option{WithBaseURL("http://speaker:8000/")}, "http://speaker:8000/play"},
		{"base path", []Option{WithBaseURL("http://speaker:8000/lobby")}, "http://speaker:8000/lobby/play"},
		{"custom path", []Option{WithBaseURL("http://speaker:8000"), WithPath("/play/chime")}, "http://speaker:8000/play/chime"},
		{"blank path keeps default", []Option{WithBaseURL("http://speaker:8000"), WithPath("  ")}, "http://speaker:8000/play"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Endpoint())
		})
	}
}

func TestClient_Play_ReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/play", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, DefaultUserAgent, r.UserAgent())
		_, _ = io.WriteString(w, "playing")
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	body, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "playing", body)
}

func TestClient_Play_NonSuccessStatusIsStillText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "speaker busy")
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	body, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "speaker busy", body)
}

func TestClient_Play_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(WithBaseURL(url))
	require.NoError(t, err)

	body, err := c.Play(context.Background())
	require.Error(t, err)
	assert.Empty(t, body)
	assert.Contains(t, err.Error(), "play request")
}

func TestClient_Play_BodyReadFailure(t *testing.T) {
	doer := doerFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: failingBody{}, Request: r}, nil
	})

	c, err := NewClient(WithBaseURL("http://speaker:8000"), WithHTTPDoer(doer))
	require.NoError(t, err)

	_, err = c.Play(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read play response")
}

func TestClient_Play_NilResponse(t *testing.T) {
	doer := doerFunc(func(*http.Request) (*http.Response, error) { return nil, nil })

	c, err := NewClient(WithBaseURL("http://speaker:8000"), WithHTTPDoer(doer))
	require.NoError(t, err)

	_, err = c.Play(context.Background())
	assert.ErrorIs(t, err, ErrNilResponse)
}

func TestClient_Play_InvalidUTF8IsReplaced(t *testing.T) {
	doer := doerFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("ok\xff")), Request: r}, nil
	})

	c, err := NewClient(WithBaseURL("http://speaker:8000"), WithHTTPDoer(doer))
	require.NoError(t, err)

	body, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok�", body)
}

func TestClient_MiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(r *http.Request, next MiddlewareNext) (*http.Response, error) {
			order = append(order, name+">")
			resp, err := next(r)
			order = append(order, "<"+name)
			return resp, err
		}
	}
	doer := doerFunc(func(r *http.Request) (*http.Response, error) {
		order = append(order, "do")
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("")), Request: r}, nil
	})

	c, err := NewClient(WithBaseURL("http://speaker:8000"), WithHTTPDoer(doer), WithMiddleware(mw("a"), mw("b")))
	require.NoError(t, err)

	_, err = c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a>", "b>", "do", "<b", "<a"}, order)
}

func TestClient_EachPlayIsIndependent(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, "playing")
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Play(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestWithDebugLog_RedactsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Set-Cookie", "session=secret")
		_, _ = io.WriteString(w, "playing")
	}))
	defer srv.Close()

	rec := logtest.New()
	auth := func(r *http.Request, next MiddlewareNext) (*http.Response, error) {
		r.Header.Set("Authorization", "Bearer secret")
		return next(r)
	}

	c, err := NewClient(WithBaseURL(srv.URL), WithMiddleware(auth), WithDebugLog(rec))
	require.NoError(t, err)

	body, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "playing", body)

	entries := rec.ByLevel("debug")
	require.Len(t, entries, 2)
	for _, e := range entries {
		dump, _ := e.Extra["Dump"].(string)
		assert.NotContains(t, dump, "secret")
	}
	assert.Contains(t, entries[0].Extra["Dump"], "Authorization: [REDACTED]")
	assert.Contains(t, entries[1].Extra["Dump"], "Set-Cookie: [REDACTED]")
}
