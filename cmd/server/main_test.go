package main

import (
	"context"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunFailsWhenDataMissing(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("METRICS_ENABLED", "false")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if code := run(ctx, cancel); code != 1 {
		t.Fatalf("expected exit code 1 for missing data, got %d", code)
	}
}

func TestRunReturnsAfterCancel(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	t.Setenv("PORT", "0")
	t.Setenv("METRICS_ENABLED", "false")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := run(ctx, cancel); code != 0 {
		t.Fatalf("expected clean exit, got %d", code)
	}
}
