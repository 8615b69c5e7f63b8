package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Sink is the logging contract handed to the converter: a message template
// plus arguments, printf style.
type Sink func(format string, args ...interface{})

type leveledLogger struct {
	verbose bool
	color   bool
	mu      sync.RWMutex
	writers []io.Writer
	out     *log.Logger
}

var globalLogger *leveledLogger

func init() {
	globalLogger = &leveledLogger{
		verbose: false,
		color:   true,
		writers: []io.Writer{os.Stdout},
		out:     log.New(os.Stdout, "", 0),
	}
}

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
}

func IsVerbose() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.verbose
}

// AddWriter duplicates all log output to an extra writer, e.g. a logfile.
// Color escapes are disabled once a non-terminal writer is attached.
func AddWriter(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.writers = append(globalLogger.writers, writer)
	globalLogger.out = log.New(io.MultiWriter(globalLogger.writers...), "", 0)
	globalLogger.color = false
}

// SetWriter replaces all log output with the given writer. Used by tests to
// capture output.
func SetWriter(writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.writers = []io.Writer{writer}
	globalLogger.out = log.New(writer, "", 0)
	globalLogger.color = false
}

func (ll *leveledLogger) getColor(level LogLevel) string {
	switch level {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	case FATAL:
		return ColorPurple
	default:
		return ColorWhite
	}
}

func (ll *leveledLogger) formatMessage(level LogLevel, message string) string {
	timestamp := time.Now().Format("06-01-02 15:04:05")

	if !ll.color {
		return fmt.Sprintf("[%s] %-5s %s", timestamp, level.String(), message)
	}

	return fmt.Sprintf(
		"%s[%s]%s %s%-5s%s %s",
		ColorGray, timestamp, ColorReset,
		ll.getColor(level), level.String(), ColorReset,
		message,
	)
}

func (ll *leveledLogger) log(level LogLevel, format string, args ...interface{}) {
	ll.mu.RLock()
	if level == DEBUG && !ll.verbose {
		ll.mu.RUnlock()
		return
	}
	out := ll.out
	ll.mu.RUnlock()

	message := fmt.Sprintf(format, args...)
	out.Println(ll.formatMessage(level, message))

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	globalLogger.log(FATAL, format, args...)
}

// GetLogFromLevel returns a Sink pinned to one level. This is the shape the
// converter accepts from its host.
func GetLogFromLevel(level LogLevel) Sink {
	return func(format string, args ...interface{}) {
		globalLogger.log(level, format, args...)
	}
}
