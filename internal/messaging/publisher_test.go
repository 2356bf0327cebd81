package messaging_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/messaging"
)

func TestPublishAsync_RetriesUntilSuccess(t *testing.T) {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	var attempts atomic.Int32
	done := make(chan struct{})

	messaging.PublishAsync("test", func(ctx context.Context) error {
		if attempts.Add(1) < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	})

	select {
	case <-done:
		assert.Equal(t, int32(3), attempts.Load())
	case <-time.After(10 * time.Second):
		t.Fatal("publish never succeeded")
	}
}

func TestPublishAsync_DoesNotBlockCaller(t *testing.T) {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	started := make(chan struct{})
	release := make(chan struct{})

	start := time.Now()
	messaging.PublishAsync("test", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})
	elapsed := time.Since(start)

	// the caller returns immediately, delivery runs on its own goroutine
	assert.Less(t, elapsed, time.Second)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("publish never started")
	}
	close(release)
}
