package domain

import "errors"

var (
	ErrPathNotConfigured  = errors.New("installation path not configured")
	ErrInvalidTransition  = errors.New("invalid launch state transition")
	ErrScanFailed         = errors.New("drive scan failed")
	ErrGameNotFound       = errors.New("game not found")
	ErrUnknownGame        = errors.New("unknown game")
	ErrDriveNotFound      = errors.New("drive not found")
	ErrNoFingerprint      = errors.New("fingerprint unavailable")
	ErrMonitorUnavailable = errors.New("game monitor unavailable")
)
