package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
	now func() time.Time
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	now := t.now
	if now == nil {
		now = time.Now
	}
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			// put the partial line back for the next write
			t.buf.WriteString(line)
			break
		}
		ts := now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return n, err
		}
	}
	return n, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// parseLevel maps a log_level setting to a level. ok is false for unknown
// names, which fall back to info.
func parseLevel(s string) (lvl log.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}

// newLogger builds the process logger on top of errOut and, when logFile is
// set, an append-mode log file. The returned close func releases the file.
func newLogger(errOut io.Writer, logFile, level string, verbose bool) (*log.Logger, func()) {
	out := errOut
	closeFn := func() {}
	var fileErr error
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			// write to both stderr and file so running interactively still shows logs
			out = io.MultiWriter(errOut, f)
			closeFn = func() { _ = f.Close() }
		} else {
			fileErr = err
		}
	}

	tw := &timestampWriter{w: out}
	logger := log.New(&terminalWriter{w: tw, fd: os.Stderr.Fd()})

	lvl, ok := parseLevel(level)
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	if !ok && !verbose {
		logger.Warn("unknown log_level, defaulting to info", "provided", level)
	}
	if fileErr != nil {
		logger.Warn("log_file specified but could not be opened; logging to stderr only", "path", logFile, "err", fileErr)
	}
	return logger, closeFn
}
