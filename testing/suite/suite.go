package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Random *ScriptedRandom
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	random := &ScriptedRandom{t: t}
	t.Cleanup(func() {
		t.Helper()

		if left := len(random.values); left > 0 {
			t.Errorf("scripted random has %d unused values: %v", left, random.values)
		}
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Random: random,
	}
}

// ScriptedRandom - returns queued values from Intn in order and fails the test
// when the queue runs dry or a value is out of range.
type ScriptedRandom struct {
	t      *testing.T
	values []int
}

// Push - queues values for the next Intn calls.
func (that *ScriptedRandom) Push(values ...int) *ScriptedRandom {
	that.values = append(that.values, values...)
	return that
}

func (that *ScriptedRandom) Intn(n int) int {
	that.t.Helper()

	if len(that.values) == 0 {
		that.t.Fatalf("scripted random: unexpected Intn(%d)", n)
	}

	value := that.values[0]
	that.values = that.values[1:]

	if value < 0 || value >= n {
		that.t.Fatalf("scripted random: %d is out of range for Intn(%d)", value, n)
	}

	return value
}
