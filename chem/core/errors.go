package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrExhausted is returned by a pull once the source has no more elements.
	// It is the normal end of iteration; terminals treat it as success.
	ErrExhausted = errors.New("chem: iterator exhausted")

	// ErrNothingToPeek is returned by Peek when the lookahead source is empty.
	ErrNothingToPeek = errors.New("chem: nothing to peek")

	// ErrUnknownExtension is returned when no constructor is registered under
	// the requested name.
	ErrUnknownExtension = errors.New("chem: unknown extension")

	// ErrExtensionType is returned when a constructor is registered under the
	// requested name but for a different element type.
	ErrExtensionType = errors.New("chem: extension registered for another element type")

	// ErrPrecondition is the class of invalid combinator arguments.
	// Use errors.Is to match any *PreconditionError.
	ErrPrecondition = errors.New("chem: precondition violated")

	// ErrIrreversible is returned by Rev on a one-directional Iter.
	ErrIrreversible = errors.New("chem: iterator cannot be reversed")
)

// PreconditionError reports an invalid argument passed to a combinator.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// Precondition builds a *PreconditionError for op.
func Precondition(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsExhausted reports whether err marks the normal end of a sequence.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrExhausted)
}

// ErrPanic wraps a recovered panic value as an error.
// This is used when a user-provided function panics on a worker goroutine.
// It includes a cleaned-up stack trace that excludes internal chemical frames.
type ErrPanic struct {
	Value any
	Stack string // Cleaned stack trace
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// NewPanicError creates an ErrPanic from a recovered value with a cleaned stack trace.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // skip: runtime.Callers, captureStack, NewPanicError, defer func
	}
}

func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// cleanStack drops frames that belong to this module so the trace starts at
// the user's closure.
func cleanStack(stack string) string {
	var result []string
	var skipNext bool

	for _, line := range strings.Split(stack, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "\t") {
			if strings.Contains(line, "github.com/reid23/chemical/chem/") {
				skipNext = true
				continue
			}
			skipNext = false
		} else if skipNext {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
