package yaparsecache

import "errors"

var (
	ErrFailedToGetRecord    = errors.New("failed to get parse record")
	ErrFailedToPutRecord    = errors.New("failed to put parse record")
	ErrFailedToDecodeRecord = errors.New("failed to decode parse record")
	ErrFailedToEncodeRecord = errors.New("failed to encode parse record")
	ErrFailedPing           = errors.New("failed to ping cache backend")
	ErrFailedToCloseBackend = errors.New("failed to close cache backend")
)
