package validation

import (
	"errors"
	"fmt"
)

// ValidationError represents a single model check failure.
type ValidationError struct {
	Key    string // Entity path, e.g. "materials[molten_salt].density"
	Reason string // Human-readable reason for failure
	Value  any    // The offending value
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Errors returns all validation errors if err is, or wraps, an AggregateError.
// Otherwise returns nil.
func Errors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// collector accumulates failures in check order.
type collector struct {
	errs []error
}

func (c *collector) fail(key, reason string, value any) {
	c.errs = append(c.errs, &ValidationError{Key: key, Reason: reason, Value: value})
}

func (c *collector) wrap(err error) {
	c.errs = append(c.errs, err)
}

func (c *collector) result() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: c.errs}
}
