package main

import (
	"testing"
	"time"

	"github.com/script-dock/internal/config"
	"github.com/script-dock/internal/history"
	"github.com/script-dock/internal/runner"
	"github.com/script-dock/internal/scripts"
)

func TestRecordRunStampsStartTime(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	start := time.Now()
	recordRun(
		scripts.Script{Key: "a.py", Path: "/tmp/a.py"},
		runner.Result{Output: "ok\n", Duration: 10 * time.Millisecond},
		nil,
		start,
	)

	path, err := config.HistoryPath()
	if err != nil {
		t.Fatalf("failed to resolve history path: %v", err)
	}
	hist, err := history.NewManager(path)
	if err != nil {
		t.Fatalf("failed to open history: %v", err)
	}
	defer hist.Close()

	entries, err := hist.Recent(10)
	if err != nil {
		t.Fatalf("failed to query history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(entries))
	}

	e := entries[0]
	if e.StartedAt.IsZero() {
		t.Fatal("run recorded with zero StartedAt")
	}
	if diff := e.StartedAt.Sub(start); diff < -time.Second || diff > time.Second {
		t.Fatalf("StartedAt = %v, want within a second of %v", e.StartedAt, start)
	}
	if e.Script != "a.py" || !e.OK {
		t.Fatalf("entry = %+v, want a.py recorded as ok", e)
	}
}
