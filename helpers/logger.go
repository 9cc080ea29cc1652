package helpers

import (
	"sjsage522/zenlesscollector/logger"
)

// LoggerInterface defines the interface for logger implementations
type LoggerInterface interface {
	LogError(component string, err error)
	LogInfo(format string, args ...interface{})
}

// Logger forwards to a structured component logger
type Logger struct {
	log *logger.Logger
}

// NewLogger creates a new logger instance for the given component
func NewLogger(component string) *Logger {
	return &Logger{
		log: logger.ForComponent(component),
	}
}

// LogError logs an error tagged with the stage that produced it
func (l *Logger) LogError(component string, err error) {
	l.log.Error().Str("stage", component).Err(err).Msg("stage failed")
}

// LogInfo logs an informational message
func (l *Logger) LogInfo(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}
