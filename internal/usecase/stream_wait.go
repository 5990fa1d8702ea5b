package usecase

import (
	"errors"
	"io"
	"time"

	"clarity/internal/ports"
)

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// waitForStream waits for the provider session to drain, force-closing it if
// the provider does not finish within the timeout.
func waitForStream(session ports.StreamingSession, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		_ = session.Close()
		return <-done
	}
}
