package function

import (
	"errors"
	"fmt"
)

// Validation failure kinds for a function draft. Each failed save reports
// exactly one of these, in field order.
var (
	ErrMissingName           = errors.New("missing function name")
	ErrMissingExpression     = errors.New("missing function expression")
	ErrMissingParameterName  = errors.New("missing parameter name")
	ErrInvalidParameterValue = errors.New("invalid parameter value")
	ErrEvaluation            = errors.New("function evaluation failed")
)

// ValidationError wraps a validation failure with its kind and detail.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalidf(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
