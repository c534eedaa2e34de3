package termio

import (
	"fmt"
	stdio "io"
	"strings"
	"time"
)

// LogLevel is the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a config level name: debug, info, warn or error.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "success":
		return LevelSuccess, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
}

// LogFormat selects the prefix style
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] ...
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatPlain                    // no prefix
)

// Logger writes levelled, colored messages through a Manager.
type Logger struct {
	io         *Manager
	format     LogFormat
	prefixes   map[LogLevel]string
	min        LogLevel
	withTime   bool
	timeFormat string
	allStderr  bool
	theme      Theme
}

// NewLogger creates a logger bound to m. Warnings and errors go to m.Err().
func NewLogger(m *Manager) *Logger {
	return &Logger{
		io:         m,
		format:     LogFormatTagged,
		prefixes:   taggedPrefixes(),
		min:        LevelInfo,
		timeFormat: "15:04:05",
		theme:      DefaultTheme(m),
	}
}

func taggedPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelSuccess: "[SUCCESS]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	}
}

func symbolPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	}
}

// WithFormat sets the prefix style and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatSymbols:
		l.prefixes = symbolPrefixes()
	case LogFormatPlain:
		l.prefixes = map[LogLevel]string{}
	default:
		l.prefixes = taggedPrefixes()
	}
	return l
}

// WithLevel drops messages below level.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.min = level
	return l
}

// AllToStderr sends every level to m.Err(), leaving stdout for data.
func (l *Logger) AllToStderr(enabled bool) *Logger {
	l.allStderr = enabled
	return l
}

func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = theme
	return l
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool { return level >= l.min }

// Log writes a message at the given level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	fmt.Fprintln(l.writer(level), l.formatMessage(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}
	parts := make([]string, 0, 3)
	if p := l.prefixes[level]; p != "" {
		parts = append(parts, p)
	}
	if l.withTime {
		parts = append(parts, time.Now().Format(l.timeFormat))
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level LogLevel, text string) string {
	var c ColorSpec
	switch level {
	case LevelDebug:
		c = l.theme.Debug
	case LevelInfo:
		c = l.theme.Info
	case LevelSuccess:
		c = l.theme.Success
	case LevelWarning:
		c = l.theme.Warning
	case LevelError:
		c = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(c).Sprint(l.io, text)
}

func (l *Logger) writer(level LogLevel) stdio.Writer {
	if l.allStderr || level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
