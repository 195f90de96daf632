// Package testlogger routes global slog output back to the test that
// produced it, so command tests can run with t.Parallel() even though
// the application logs through a single global handler.
package testlogger

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/uranusjr/pythonup/internal/cmdlogger"
)

// Handler is set as the global logging handler before tests start; each
// test run then registers its own logger with AddInstance, keyed by the
// test runner frame of the calling goroutine.
type Handler struct {
	mu      sync.Mutex
	loggers map[string]cmdlogger.CmdLogger
}

func New() *Handler {
	return &Handler{loggers: make(map[string]cmdlogger.CmdLogger)}
}

func (tl *Handler) getLogger() cmdlogger.CmdLogger {
	key := callerTestInstance()

	tl.mu.Lock()
	defer tl.mu.Unlock()

	logger, ok := tl.loggers[key]
	if !ok {
		panic("no logger was registered for " + key)
	}

	return logger
}

// AddInstance registers the logger that records from this test run are
// routed to.
func (tl *Handler) AddInstance(logger cmdlogger.CmdLogger) {
	key := callerTestInstance()

	tl.mu.Lock()
	defer tl.mu.Unlock()

	if _, ok := tl.loggers[key]; ok {
		// Delete was not called at the end of an earlier run.
		panic("a logger is already registered for " + key)
	}
	tl.loggers[key] = logger
}

// Delete removes the logger created by AddInstance. It must be called
// before the test ends, as the runner's stack key may be reused by a
// later test.
func (tl *Handler) Delete() {
	key := callerTestInstance()

	tl.mu.Lock()
	defer tl.mu.Unlock()

	delete(tl.loggers, key)
}

func (tl *Handler) SendEverythingToStderr() {
	tl.getLogger().SendEverythingToStderr()
}

func (tl *Handler) SetLevel(level slog.Leveler) {
	tl.getLogger().SetLevel(level)
}

func (tl *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return tl.getLogger().Enabled(ctx, level)
}

func (tl *Handler) Handle(ctx context.Context, record slog.Record) error {
	return tl.getLogger().Handle(ctx, record)
}

func (tl *Handler) HasErrored() bool {
	return tl.getLogger().HasErrored()
}

func (tl *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tl.getLogger().WithAttrs(attrs)
}

func (tl *Handler) WithGroup(g string) slog.Handler {
	return tl.getLogger().WithGroup(g)
}

var _ cmdlogger.CmdLogger = &Handler{}

// callerTestInstance walks the call stack for the frame of the
// innermost test runner call, which looks like
//
//	testing.tRunner(0x12345678, 0x98765432)
//
// The first pointer is unique for as long as the test is running, so
// the line is usable as a map key.
func callerTestInstance() string {
	sc := bufio.NewScanner(bytes.NewReader(debug.Stack()))
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), "testing.tRunner(") {
			return sc.Text()
		}
	}

	return ""
}
