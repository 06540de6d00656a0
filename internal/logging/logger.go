// Package logging provides the console logger of the CLI and sets up the
// diagnostics loggers of the library packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	golog "github.com/ipfs/go-log/v2"

	"github.com/tragoedia0722/batchrename/internal/config"
	"github.com/tragoedia0722/batchrename/internal/term"
)

// Subsystems are the go-log loggers of the library packages.
var Subsystems = []string{"walker", "batch", "applier", "template", "storage"}

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
}

// NewLogger configures colors and library log levels from cfg and
// optionally opens the log file. Call Close() when done.
func NewLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	ConfigureLibraries(cfg.Verbose)

	l := &Logger{out: stdout, errOut: stderr, verbose: cfg.Verbose}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// ConfigureLibraries routes the library loggers to stderr, at debug level
// when verbose and warnings only otherwise.
func ConfigureLibraries(verbose bool) {
	level := golog.LevelWarn
	if verbose {
		level = golog.LevelDebug
	}
	levels := make(map[string]golog.LogLevel, len(Subsystems))
	for _, name := range Subsystems {
		levels[name] = level
	}
	golog.SetupLogging(golog.Config{
		Format:          golog.PlaintextOutput,
		Stderr:          true,
		Level:           golog.LevelError,
		SubsystemLevels: levels,
	})
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == "ERROR" || level == "WARN" {
		out = l.errOut
	}
	if color != "" {
		_, _ = io.WriteString(out, color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, "["+level+"] "+text+"\n")
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Print writes text to stdout as is, for previews and listings. It is not
// copied to the log file.
func (l *Logger) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, text+"\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow), to stderr.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
