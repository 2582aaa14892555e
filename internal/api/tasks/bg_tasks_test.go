package tasks

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	bgTasks := New(slog.Default(), 3, 10)
	bgTasks.Run()
	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		bgTasks.Add(func() { ran.Add(1) })
	}
	require.NoError(t, bgTasks.Shutdown(context.Background()))
	assert.EqualValues(t, 5, ran.Load())
	assert.True(t, bgTasks.IsEmpty())
}

func TestShutdownTimeout(t *testing.T) {
	bgTasks := New(slog.Default(), 1, 10)
	bgTasks.Run()
	release := make(chan struct{})
	bgTasks.Add(func() { <-release })
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, bgTasks.Shutdown(ctx), context.DeadlineExceeded)
	close(release)
}
