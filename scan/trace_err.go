package scan

import (
	"strings"
)

type traceErr struct {
	trace []string
	err   error
}

func (e *traceErr) Error() string {
	prefix := strings.Join(e.trace, " > ")

	return "[" + prefix + "]: " + e.err.Error()
}

func (e *traceErr) Is(target error) bool {
	_, ok := target.(*traceErr)
	return ok
}

func (e *traceErr) Unwrap() error {
	return e.err
}

func (e *traceErr) Cause() error {
	return e.err
}

// Wrap prefixes err with the name of the pipeline stage it went through.
// Wrapping an already traced error extends its trace outward.
func Wrap(stage string, err error) error {
	if err == nil {
		return nil
	}

	if we, ok := err.(*traceErr); ok {
		we.trace = append([]string{stage}, we.trace...)
		return we
	}

	return &traceErr{
		trace: []string{stage},
		err:   err,
	}
}
