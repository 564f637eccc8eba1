package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Fetch: 3 * time.Second})

	got := timeouts.Current()
	if got.Fetch != 3*time.Second {
		t.Errorf("Fetch: got %v, want %v", got.Fetch, 3*time.Second)
	}
	if got.Health != timeouts.DefaultHealth {
		t.Errorf("Health: got %v, want %v", got.Health, timeouts.DefaultHealth)
	}
	if got.Report != timeouts.DefaultReport {
		t.Errorf("Report: got %v, want %v", got.Report, timeouts.DefaultReport)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	timeouts.Configure(timeouts.Config{Health: time.Second, Action: time.Second})
	timeouts.Reset()

	if timeouts.Health() != timeouts.DefaultHealth {
		t.Errorf("Health: got %v, want %v", timeouts.Health(), timeouts.DefaultHealth)
	}
	if timeouts.Action() != timeouts.DefaultAction {
		t.Errorf("Action: got %v, want %v", timeouts.Action(), timeouts.DefaultAction)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), 10*time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("err: got %v, want %v", ctx.Err(), context.DeadlineExceeded)
	}
}
