package errors

import (
	"fmt"
)

// ErrCode groups sentinel errors by the kind of failure; wrap them with
// github.com/pkg/errors at the call site and compare with errors.Cause.
type ErrCode int
type HeliosErr struct {
	Code ErrCode
	Msg  string
}

func (e *HeliosErr) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Msg)
}

func new(code ErrCode, msg string) *HeliosErr {
	return &HeliosErr{
		Code: code,
		Msg:  msg,
	}
}

const (
	invalid ErrCode = iota
	notFound
	relocateFailed
	dialogFailed
	configFailed
)

// Pre-defined errors.
var (
	NoSourceRepo = new(invalid, "no APTonCD source repository specified")
	NoAptMount   = new(notFound, "no APT partition is mounted")

	RelocateFailed = new(relocateFailed, "failed to relocate APT sources")
	RestoreFailed  = new(relocateFailed, "failed to restore APT sources")

	DialogFailed    = new(dialogFailed, "dialog process failed")
	DialogCancelled = new(dialogFailed, "dialog was cancelled")

	InvalidConfig = new(configFailed, "invalid helios configuration")
)
