package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents page fetch errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeCache represents snapshot store errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeNotifier represents notification errors
	ErrorTypeNotifier ErrorType = "notifier"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// CollectorError represents an error raised by one stage of a fetch action
type CollectorError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *CollectorError) Error() string {
	if e.Source == "" {
		if e.Err != nil {
			return fmt.Sprintf("[%s] %s - %v", e.Type, e.Message, e.Err)
		}
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *CollectorError) Unwrap() error {
	return e.Err
}

// Is reports whether the given error is of the given type
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if ce, ok := err.(*CollectorError); ok && ce.Type == errType {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// New creates a new CollectorError
func New(errType ErrorType, source, message string, err error) *CollectorError {
	return &CollectorError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(source, message string, err error) *CollectorError {
	return New(ErrorTypeNetwork, source, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *CollectorError {
	return New(ErrorTypeParsing, source, message, err)
}

// NewCache creates a new cache error
func NewCache(source, message string, err error) *CollectorError {
	return New(ErrorTypeCache, source, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(source, message string, err error) *CollectorError {
	return New(ErrorTypePublisher, source, message, err)
}

// NewNotifier creates a new notifier error
func NewNotifier(source, message string, err error) *CollectorError {
	return New(ErrorTypeNotifier, source, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *CollectorError {
	return New(ErrorTypeConfiguration, "", message, err)
}
