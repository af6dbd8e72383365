// Package vimlog provides structured, leveled, file-backed logging for
// vimengine, and an adapter that turns an internal/vimcore.EventSink
// into a stream of log lines.
package vimlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loamwood/vimengine/internal/vimpubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages by the subsystem that produced
// them.
type Category string

const (
	CatEngine Category = "engine" // vimcore dispatch/mode-switch events
	CatRemap  Category = "remap"  // key-map resolution
	CatParser Category = "parser" // excmd parsing
	CatConfig Category = "config" // config load/reload
	CatWatch  Category = "watch"  // config file watcher
	CatCLI    Category = "cli"    // cmd/vimengine
)

// Logger is a leveled, categorized logger writing "key=value"-suffixed
// lines to a file, and fanning every line out to anything subscribed
// via Listen.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *vimpubsub.Broker[string]
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init opens path for appending and installs it as the global logger.
func Init(path string) (func(), error) {
	var initErr error
	once.Do(func() {
		defaultLogger, initErr = newLogger(path)
	})
	if initErr != nil {
		return nil, initErr
	}
	if defaultLogger == nil {
		return nil, fmt.Errorf("vimlog: logger already attempted and failed")
	}
	return func() {
		if defaultLogger != nil && defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
		}
	}, nil
}

// InitWithTeaLog installs the global logger using bubbletea's
// tea.LogToFile, which additionally suppresses the program's own
// stderr/stdout writes while the TUI owns the terminal — the form
// cmd/vimengine's repl subcommand uses.
func InitWithTeaLog(path, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	defaultLogger = &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   vimpubsub.NewBroker[string](),
	}
	return func() { _ = f.Close() }, nil
}

func newLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   vimpubsub.NewBroker[string](),
	}, nil
}

// SetEnabled toggles logging on or off at runtime.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum level that will be written or published.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { log(LevelDebug, cat, msg, fields...) }
func Info(cat Category, msg string, fields ...any)  { log(LevelInfo, cat, msg, fields...) }
func Warn(cat Category, msg string, fields ...any)  { log(LevelWarn, cat, msg, fields...) }
func Error(cat Category, msg string, fields ...any) { log(LevelError, cat, msg, fields...) }

// ErrorErr logs msg at error level with err's text appended as a field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil || !defaultLogger.enabled || level < defaultLogger.minLevel {
		return
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02T15:04:05")
	entry := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	entry += "\n"

	if defaultLogger.writer != nil {
		_, _ = defaultLogger.writer.Write([]byte(entry))
	}
	if defaultLogger.broker != nil {
		defaultLogger.broker.Publish(vimpubsub.LineAppended, entry)
	}
}

// LogEvent is a published log line.
type LogEvent = vimpubsub.Event[string]

// LogListener wraps a continuous broker subscription for a Bubble Tea
// Update loop.
type LogListener = vimpubsub.ContinuousListener[string]

// NewListener subscribes to the global logger's line stream for the
// lifetime of ctx, or returns nil if no logger has been initialized.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil || defaultLogger.broker == nil {
		return nil
	}
	return vimpubsub.NewContinuousListener(ctx, defaultLogger.broker)
}
