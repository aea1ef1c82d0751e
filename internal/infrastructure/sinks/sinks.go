package sinks

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hilthontt/playbutton/internal/domain"
	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
)

func activationParams(a domain.Activation) map[logging.ExtraKey]any {
	return map[logging.ExtraKey]any{
		logging.ActivationID: a.ID.String(),
		logging.ButtonID:     a.ButtonID,
		logging.Source:       a.Source,
		logging.Latency:      time.Since(a.At).String(),
	}
}

// NewLogSinks reports successes at info level with the body as the message,
// and failures at error level as "Error: <err>".
func NewLogSinks(logger logging.Logger) domain.Sinks {
	return domain.Sinks{
		Success: func(a domain.Activation, body string) {
			params := activationParams(a)
			params[logging.ResponseBody] = body
			params[logging.BodySize] = len(body)
			logger.Info(logging.Playback, logging.PlayResult, body, params)
		},
		Error: func(a domain.Activation, err error) {
			params := activationParams(a)
			params[logging.ErrorMessage] = err.Error()
			logger.Error(logging.Playback, logging.PlayError, fmt.Sprintf("%s %v", domain.ErrorLabel, err), params)
		},
	}
}

// NewWriterSinks writes the body to out and "Error: <err>" to errOut,
// one line each.
func NewWriterSinks(out, errOut io.Writer) domain.Sinks {
	var mu sync.Mutex

	return domain.Sinks{
		Success: func(_ domain.Activation, body string) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintln(out, body)
		},
		Error: func(_ domain.Activation, err error) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintln(errOut, domain.ErrorLabel, err)
		},
	}
}

// Tee fans one outcome out to several sink pairs in order.
func Tee(all ...domain.Sinks) domain.Sinks {
	return domain.Sinks{
		Success: func(a domain.Activation, body string) {
			for _, s := range all {
				s.Success(a, body)
			}
		},
		Error: func(a domain.Activation, err error) {
			for _, s := range all {
				s.Error(a, err)
			}
		},
	}
}
