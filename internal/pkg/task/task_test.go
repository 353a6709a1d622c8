package task_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/brainmon-api/internal/errors"
	"github.com/KirkDiggler/brainmon-api/internal/pkg/task"
)

func TestRunner_GoReturnsError(t *testing.T) {
	runner := task.NewRunner()
	boom := stderrors.New("insert failed")

	res := runner.Go(context.Background(), "capture", func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, res.Wait(context.Background()), boom)
}

func TestRunner_TaskOutlivesCallerContext(t *testing.T) {
	runner := task.NewRunner()
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	res := runner.Go(ctx, "delete", func(taskCtx context.Context) error {
		<-release
		return taskCtx.Err()
	})

	cancel()
	close(release)

	assert.NoError(t, res.Wait(context.Background()))
}

func TestRunner_PanicBecomesInternalError(t *testing.T) {
	runner := task.NewRunner()

	res := runner.Go(context.Background(), "explode", func(ctx context.Context) error {
		panic("kaboom")
	})

	err := res.Wait(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
	assert.Contains(t, err.Error(), "kaboom")
}

func TestRunner_WaitDrainsTasks(t *testing.T) {
	runner := task.NewRunner()
	var finished bool

	runner.Go(context.Background(), "slow", func(ctx context.Context) error {
		time.Sleep(20 * time.Millisecond)
		finished = true
		return nil
	})

	require.NoError(t, runner.Wait(context.Background()))
	assert.True(t, finished)
}

func TestResult_WaitHonoursContext(t *testing.T) {
	runner := task.NewRunner()
	release := make(chan struct{})
	defer close(release)

	res := runner.Go(context.Background(), "blocked", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, res.Wait(ctx), context.DeadlineExceeded)
}

func TestCompleted(t *testing.T) {
	res := task.Completed(nil)

	select {
	case <-res.Done():
	default:
		t.Fatal("completed result should be done")
	}
	assert.NoError(t, res.Wait(context.Background()))
}
