package player

import (
	"net/http"
	"net/http/httputil"
	"regexp"

	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
)

var sensitiveHeaderRegex = regexp.MustCompile(`(?im)^(Authorization|Cookie|Set-Cookie|X-Api-Key): .+$`)

func redactSensitiveHeaders(s string) string {
	return sensitiveHeaderRegex.ReplaceAllString(s, "$1: [REDACTED]")
}

// WithDebugLog dumps every request and response at debug level.
func WithDebugLog(logger logging.Logger) Option {
	return WithMiddleware(func(r *http.Request, next MiddlewareNext) (*http.Response, error) {
		if dump, err := httputil.DumpRequestOut(r, true); err == nil {
			logger.Debug(logging.RequestResponse, logging.ExternalService, "request", map[logging.ExtraKey]any{
				logging.Method: r.Method,
				logging.Path:   r.URL.Path,
				logging.Dump:   redactSensitiveHeaders(string(dump)),
			})
		}

		resp, err := next(r)

		if resp != nil {
			if dump, derr := httputil.DumpResponse(resp, true); derr == nil {
				logger.Debug(logging.RequestResponse, logging.ExternalService, "response", map[logging.ExtraKey]any{
					logging.StatusCode: resp.StatusCode,
					logging.Dump:       redactSensitiveHeaders(string(dump)),
				})
			}
		}

		if err != nil {
			logger.Debug(logging.RequestResponse, logging.ExternalService, "request error", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
		}

		return resp, err
	})
}
