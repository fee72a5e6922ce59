package shutdown

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRunWithGracefulShutdown_RunnerReturns(t *testing.T) {
	wantErr := errors.New("listen failed")
	shutdownCalled := false

	err := RunWithGracefulShutdown(context.Background(), discardLogger(), time.Second,
		func(context.Context) error { return wantErr },
		func(context.Context) error { shutdownCalled = true; return nil },
	)

	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if shutdownCalled {
		t.Error("shutdown should not run when the runner exits on its own")
	}
}

func TestRunWithGracefulShutdown_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan struct{})
	shutdownCalled := false

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := RunWithGracefulShutdown(ctx, discardLogger(), time.Second,
		func(context.Context) error {
			<-stop
			return nil
		},
		func(context.Context) error {
			shutdownCalled = true
			close(stop)
			return nil
		},
	)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !shutdownCalled {
		t.Error("shutdown was not called")
	}
}

func TestRunWithGracefulShutdown_RunnerSeesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunWithGracefulShutdown(ctx, discardLogger(), time.Second,
		func(runCtx context.Context) error {
			<-runCtx.Done()
			return runCtx.Err()
		},
		func(context.Context) error { return nil },
	)

	if err != nil {
		t.Errorf("context.Canceled from the runner should not be an error, got %v", err)
	}
}

func TestRunWithGracefulShutdown_Timeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	start := time.Now()
	err := RunWithGracefulShutdown(ctx, discardLogger(), 50*time.Millisecond,
		func(context.Context) error {
			<-release // ignores cancellation
			return nil
		},
		func(context.Context) error { return errors.New("stuck") },
	)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("took %v, want about the shutdown timeout", elapsed)
	}
}
