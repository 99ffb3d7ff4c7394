package system

import (
	"context"
)

// Executes an operation with context awareness, ensuring proper
// completion or graceful interruption.
//
// Returns:
//   - nil if the operation completes successfully.
//   - the operation's own error if it fails.
//   - the operation's result after interruption if the parent context
//     is cancelled mid-flight; the operation is signalled to stop but
//     allowed to finish.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller was already cancelled before we
	// started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own context so its lifecycle can be
	// managed separately from the parent: on parent cancellation it is
	// signalled, not abandoned, and cannot leave shared state half
	// torn down.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads the
	// result of a late completion.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it: critical
		// work finishes, resources are released exactly once.
		cancel()
		return <-done
	}
}
