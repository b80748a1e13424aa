package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the log file. Empty means Output, or
	// stdout when Output is nil as well.
	OutputPath string
	// Output receives log lines when OutputPath is empty.
	Output io.Writer
	// ProbeLog is an optional file receiving one ProbeLog
	// record per line.
	ProbeLog string
	Level    LogLevel
	Verbose  bool
	Fields   map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu       *sync.Mutex
	output   io.Writer
	probeLog io.Writer
	closers  []io.Closer
	level    LogLevel
	fields   map[string]any
	verbose  bool
	closed   *bool
}

// NewJSONLogger creates a new JSON logger.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		mu:      &sync.Mutex{},
		level:   config.Level,
		verbose: config.Verbose,
		fields:  make(map[string]any, len(config.Fields)),
		closed:  new(bool),
	}
	for k, v := range config.Fields {
		logger.fields[k] = v
	}

	switch {
	case config.OutputPath != "":
		file, err := openAppend(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		logger.output = file
		logger.closers = append(logger.closers, file)
	case config.Output != nil:
		logger.output = config.Output
	default:
		logger.output = os.Stdout
	}

	if config.ProbeLog != "" {
		file, err := openAppend(config.ProbeLog)
		if err != nil {
			logger.Close()
			return nil, fmt.Errorf(
				"failed to open probe log: %w", err,
			)
		}
		logger.probeLog = file
		logger.closers = append(logger.closers, file)
	}

	return logger, nil
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    make(map[string]any, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. The derived logger shares the parent's writers.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}

	return &JSONLogger{
		mu:       l.mu,
		output:   l.output,
		probeLog: l.probeLog,
		level:    l.level,
		verbose:  l.verbose,
		fields:   newFields,
		closed:   l.closed,
	}
}

// LogProbe writes the probe record to the dedicated probe log
// when one is configured, and to the main output at debug
// level otherwise.
func (l *JSONLogger) LogProbe(probe ProbeLog) {
	if probe.Timestamp == "" {
		probe.Timestamp = time.Now().Format(time.RFC3339Nano)
	}

	if l.probeLog == nil {
		l.Debug("probe",
			StringField("assertion", probe.Assertion),
			StringField("parameter", probe.Parameter),
			StringField("probe", probe.Probe),
			BoolField("passed", probe.Passed),
		)
		return
	}

	data, err := jsonMarshal(probe)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if *l.closed {
		return
	}
	fmt.Fprintln(l.probeLog, string(data))
}

// Close releases any files opened by the logger. Derived
// loggers created by WithFields are closed as well.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return nil
	}
	*l.closed = true

	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
