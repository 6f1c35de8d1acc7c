package config

import (
	"fmt"
	"log/slog"
)

// LogLevel is the verbosity of diagnostic logging.
type LogLevel int

const (
	LogLevelInvalid LogLevel = iota

	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevelValueMap = map[LogLevel]string{
	LogLevelDebug: "debug",
	LogLevelInfo:  "info",
	LogLevelWarn:  "warn",
	LogLevelError: "error",
}

func (l LogLevel) String() string {
	v, ok := logLevelValueMap[l]
	if !ok {
		return fmt.Sprintf("invalid(%d)", l)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (l *LogLevel) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range logLevelValueMap {
		if v == text {
			*l = k
			return nil
		}
	}

	return fmt.Errorf("unknown log level %q", text)
}

func (l LogLevel) MarshalText() ([]byte, error) {
	v, ok := logLevelValueMap[l]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid LogLevel(%d)", l)
	}

	return []byte(v), nil
}

// Slog maps the level to the slog one.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Output is the format of command results.
type Output int

const (
	OutputInvalid Output = iota

	OutputText
	OutputYAML
)

var outputValueMap = map[Output]string{
	OutputText: "text",
	OutputYAML: "yaml",
}

func (o Output) String() string {
	v, ok := outputValueMap[o]
	if !ok {
		return fmt.Sprintf("invalid(%d)", o)
	}

	return v
}

func (o *Output) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range outputValueMap {
		if v == text {
			*o = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}

func (o Output) MarshalText() ([]byte, error) {
	v, ok := outputValueMap[o]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Output(%d)", o)
	}

	return []byte(v), nil
}
