// Package console drives the button from line-oriented input: every line
// read is one press, whatever it contains.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/hilthontt/playbutton/internal/domain"
)

type Presser interface {
	Press(source string)
}

// Run returns nil on EOF or when ctx is cancelled.
func Run(ctx context.Context, in io.Reader, button Presser) error {
	lines := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- struct{}{}:
			case <-ctx.Done():
				done <- nil
				return
			}
		}
		if err := scanner.Err(); err != nil {
			done <- fmt.Errorf("read input: %w", err)
			return
		}
		done <- nil
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-done:
			return err
		case <-lines:
			button.Press(domain.SourceStdin)
		}
	}
}
