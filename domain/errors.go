package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a scenario that cannot be resolved from the
// supplied inputs.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Numeric conditions that would otherwise surface as NaN or Inf.
var (
	ErrNonPositivePriceToRent = errors.New("price-to-rent ratio must be positive")
	ErrZeroMortgageRate       = errors.New("mortgage rate of zero makes the annuity denominator zero")
	ErrInvalidHorizon         = errors.New("holding period must be at least one year")
	ErrZeroCapital            = errors.New("initial capital invested is zero")
	ErrUndefinedReturn        = errors.New("annualized return is undefined for a negative multiple")
	ErrNoViableHorizon        = errors.New("no holding period in the range gives a defined return")
)

type DomainError struct {
	Err    error
	Detail string
}

func NewDomainError(err error, format string, args ...interface{}) *DomainError {
	return &DomainError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return "domain error: " + e.Err.Error()
	}
	return fmt.Sprintf("domain error: %s (%s)", e.Err.Error(), e.Detail)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
