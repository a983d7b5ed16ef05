package ai

import "errors"

// ErrorKind buckets a generation failure for display in the dashboard.
type ErrorKind string

const (
	ErrorKindMissingCredential ErrorKind = "missing_credential"
	ErrorKindQuotaExceeded     ErrorKind = "quota_exceeded"
	ErrorKindSafetyRejected    ErrorKind = "safety_rejected"
	ErrorKindUnavailable       ErrorKind = "service_unavailable"
)

var ErrMissingCredential = errors.New("ai: api key missing or invalid")
var ErrQuotaExceeded = errors.New("ai: quota exceeded")
var ErrSafetyRejected = errors.New("ai: request rejected by safety policy")

// ClassifyError maps a generation error onto an ErrorKind. Anything that is
// not one of the known sentinels counts as the service being unavailable.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return ErrorKindMissingCredential
	case errors.Is(err, ErrQuotaExceeded):
		return ErrorKindQuotaExceeded
	case errors.Is(err, ErrSafetyRejected):
		return ErrorKindSafetyRejected
	default:
		return ErrorKindUnavailable
	}
}
