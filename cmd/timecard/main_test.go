package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ymizrahi/timecard/logging"
)

func TestDrainLogs(t *testing.T) {
	logBuffer = logging.NewBufferedLogHandler(nil)
	t.Cleanup(func() {
		logBuffer = nil
		logging.SetLogger(nil)
	})
	logging.SetLogger(slog.New(logBuffer))

	logging.Logger().Debug("page converted", "page", 2, "records", 14)

	var out bytes.Buffer
	drainLogs(&out)
	if !strings.Contains(out.String(), "page converted") {
		t.Errorf("drained output missing the captured record: %q", out.String())
	}
	if logBuffer.Len() != 0 {
		t.Error("drain must clear the buffer")
	}

	// A second drain on the empty buffer writes nothing.
	out.Reset()
	drainLogs(&out)
	if out.Len() != 0 {
		t.Errorf("empty drain wrote %q", out.String())
	}
}

func TestDrainLogsNilBuffer(t *testing.T) {
	logBuffer = nil
	var out bytes.Buffer
	drainLogs(&out)
	if out.Len() != 0 {
		t.Errorf("nil buffer drain wrote %q", out.String())
	}
}

func TestColumnCandidates(t *testing.T) {
	columnsPath = "custom.json"
	t.Cleanup(func() { columnsPath = "" })
	t.Setenv("TIMECARD_COLUMNS", "/etc/timecard/columns.json")

	got := columnCandidates()
	want := []string{"custom.json", "/etc/timecard/columns.json", "column_ranges.json"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}
