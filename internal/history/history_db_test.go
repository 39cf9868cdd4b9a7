package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestRecordAndRecent(t *testing.T) {
	m := newTestManager(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := []Entry{
		{Script: "a.py", Path: "/s/a.py", StartedAt: base, Duration: 120 * time.Millisecond, OK: true},
		{Script: "b.py", Path: "/s/b.py", StartedAt: base.Add(time.Minute), Duration: 40 * time.Millisecond, OK: false, Error: "boom"},
	}
	for _, e := range runs {
		if err := m.Record(e); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	got, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	// Newest first.
	if got[0].Script != "b.py" {
		t.Fatalf("got[0].Script = %q, want b.py", got[0].Script)
	}
	if got[0].OK || got[0].Error != "boom" {
		t.Fatalf("got[0] = %+v, want failed run", got[0])
	}
	if got[1].Duration != 120*time.Millisecond {
		t.Fatalf("got[1].Duration = %v", got[1].Duration)
	}
}

func TestRecentLimit(t *testing.T) {
	m := newTestManager(t)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		e := Entry{Script: "a.py", Path: "/s/a.py", StartedAt: base.Add(time.Duration(i) * time.Second), OK: true}
		if err := m.Record(e); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	got, err := m.Recent(3)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
}

func TestClear(t *testing.T) {
	m := newTestManager(t)

	if err := m.Record(Entry{Script: "a.py", Path: "/s/a.py", StartedAt: time.Now(), OK: true}); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	got, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries after clear", len(got))
	}
}
