// Package logging is a small structured logger that writes one JSON object per line.
// Details attached to a context with ContextWith end up in every entry logged with that context.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	// Out receives the entries, os.Stderr when nil.
	Out io.Writer
	// Level is the lowest level that gets written.
	// The zero value means LevelInfo.
	Level Level

	mu sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

// Log writes a single entry when level is enabled.
// Explicit details take precedence over the ones carried by ctx.
func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	e := make(entry)
	for _, d := range detailsFrom(ctx) {
		d.addTo(e)
	}
	for _, d := range ds {
		d.addTo(e)
	}
	e["level"] = level
	e["message"] = msg
	e["timestamp"] = clock.Now().Format(time.RFC3339)

	bs, err := json.Marshal(e)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out().Write(append(bs, '\n'))
}

func (l *Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

type testingTB interface {
	Helper()
}

// Stub returns a Logger with debug level enabled, and the buffer where its output is recorded.
func Stub(tb testingTB) (*Logger, *StubOutput) {
	tb.Helper()
	buf := &StubOutput{}
	return &Logger{Level: LevelDebug, Out: buf}, buf
}

// StubOutput is a bytes.Buffer safe for concurrent use.
type StubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (s *StubOutput) Write(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.buf.Write(p)
}

func (s *StubOutput) String() string {
	s.m.Lock()
	defer s.m.Unlock()
	return s.buf.String()
}

func (s *StubOutput) Bytes() []byte {
	s.m.Lock()
	defer s.m.Unlock()
	return append([]byte{}, s.buf.Bytes()...)
}
