package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// BufferedLogHandler implements slog.Handler and captures log records in
// memory. Useful for inspecting what a conversion logged without writing
// to stderr, both in tests and when surfacing diagnostics after a CLI run.
//
// Example usage:
//
//	handler := logging.NewBufferedLogHandler(nil)
//	logging.SetLogger(slog.New(handler))
//
//	// ... run a conversion ...
//
//	if handler.Contains("no header fields") {
//	    fmt.Println(handler.String())
//	}
//
// To filter by level:
//
//	handler := logging.NewBufferedLogHandler(&slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})
type BufferedLogHandler struct {
	level      slog.Leveler
	buffer     *bytes.Buffer
	mu         sync.Mutex
	preAttrs   []slog.Attr
	groupNames []string
}

// NewBufferedLogHandler creates a handler with an empty buffer. Pass nil
// for opts to capture all levels, or provide HandlerOptions to filter.
func NewBufferedLogHandler(opts *slog.HandlerOptions) *BufferedLogHandler {
	h := &BufferedLogHandler{
		buffer: &bytes.Buffer{},
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled implements slog.Handler. With no configured level every record
// is captured.
func (h *BufferedLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return true
	}
	return level >= h.level.Level()
}

// Handle implements slog.Handler. Records are written as JSON lines.
func (h *BufferedLogHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := logEntry{
		Level:    r.Level.String(),
		Message:  r.Message,
		DateTime: r.Time.Format(time.DateTime),
	}

	for _, attr := range h.preAttrs {
		entry.Attrs = append(entry.Attrs, h.prefixedAttr(attr))
	}

	r.Attrs(func(attr slog.Attr) bool {
		entry.Attrs = append(entry.Attrs, h.prefixedAttr(attr))
		return true
	})

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	h.buffer.Write(data)
	h.buffer.WriteByte('\n')

	return nil
}

func (h *BufferedLogHandler) prefixedAttr(attr slog.Attr) string {
	if len(h.groupNames) == 0 {
		return attr.String()
	}
	prefix := strings.Join(h.groupNames, ".")
	return prefix + "." + attr.String()
}

// WithAttrs implements slog.Handler. The returned handler shares the
// underlying buffer.
func (h *BufferedLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()

	newAttrs := make([]slog.Attr, len(h.preAttrs), len(h.preAttrs)+len(attrs))
	copy(newAttrs, h.preAttrs)
	newAttrs = append(newAttrs, attrs...)

	return &BufferedLogHandler{
		level:      h.level,
		buffer:     h.buffer,
		preAttrs:   newAttrs,
		groupNames: h.groupNames,
	}
}

// WithGroup implements slog.Handler. Attributes logged through the
// returned handler carry the group name as a dotted prefix.
func (h *BufferedLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	newGroups := make([]string, len(h.groupNames), len(h.groupNames)+1)
	copy(newGroups, h.groupNames)
	newGroups = append(newGroups, name)

	return &BufferedLogHandler{
		level:      h.level,
		buffer:     h.buffer,
		preAttrs:   h.preAttrs,
		groupNames: newGroups,
	}
}

// String returns all captured log output.
func (h *BufferedLogHandler) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buffer.String()
}

// Reset clears all captured log output.
func (h *BufferedLogHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buffer.Reset()
}

// Contains reports whether the captured output contains the substring.
func (h *BufferedLogHandler) Contains(s string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return bytes.Contains(h.buffer.Bytes(), []byte(s))
}

// Len returns the number of captured bytes.
func (h *BufferedLogHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buffer.Len()
}

type logEntry struct {
	Level    string   `json:"level"`
	Message  string   `json:"message"`
	DateTime string   `json:"datetime"`
	Attrs    []string `json:"attrs,omitempty"`
}
