package aptsource

import (
	"github.com/pkg/errors"

	defs "helios/definitions"
)

// Severity is the label a caller shows in front of a result message.
type Severity string

const (
	SeverityOK     Severity = defs.LabelOK
	SeverityNotice Severity = defs.LabelNotice
	SeverityError  Severity = defs.LabelError
)

// Result is what every state-changing operation returns. Nothing is shown to
// the user here, the caller decides how to surface it.
type Result struct {
	OK       bool
	Message  string
	Severity Severity
	// Failures holds the per-file errors of a bulk relocation.
	Failures []error

	cause error
}

func succeed(msg string) Result {
	return Result{OK: true, Message: msg, Severity: SeverityOK}
}

func notice(msg string, cause error) Result {
	return Result{Message: msg, Severity: SeverityNotice, cause: cause}
}

func fail(msg string, cause error) Result {
	return Result{Message: msg, Severity: SeverityError, cause: cause}
}

// Err returns nil for a successful result, otherwise the message wrapped
// around one of the helios/errors sentinels.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return errors.Wrap(r.cause, r.Message)
}

func (r Result) String() string {
	return string(r.Severity) + " " + r.Message
}
