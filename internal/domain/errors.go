package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// OpDataPath is the op recorded when the dataset root fails validation.
const OpDataPath = "split.datapath"

// SumError reports a proportion triple that does not add up to 1.0.
type SumError struct {
	Sum float64
}

func (e *SumError) Error() string {
	return fmt.Sprintf("train_pct + val_pct + test_pct = %v, must equal 1.0", e.Sum)
}

func (e *SumError) Unwrap() error { return ErrInvalidConfig }

// UserMessage renders err for terminal output. Kinds with a fixed meaning get a
// short message; everything else falls back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var se *SumError
	if errors.As(err, &se) {
		return se.Error()
	}

	var oe *OpError
	if errors.As(err, &oe) && oe.Op == OpDataPath {
		return fmt.Sprintf("datapath not found: %s", oe.Path)
	}
	return err.Error()
}
