package models

import "errors"

var (
	ErrConfigMissing     = errors.New("required setting is missing")
	ErrCredentialMissing = errors.New("no stored credential")
	ErrRefreshFailed     = errors.New("token refresh failed")
	ErrTransport         = errors.New("remote request failed")
	ErrUnsupportedYear   = errors.New("unsupported year")
	ErrUnsupportedKind   = errors.New("unsupported kind")
	ErrMalformedPayload  = errors.New("malformed payload")
)

// IsUsageError reports whether err was caused by invalid command line input.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnsupportedYear) || errors.Is(err, ErrUnsupportedKind)
}
