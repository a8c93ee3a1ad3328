package qrcode

import "errors"

// Sentinel errors for invalid-input and capacity-exhausted conditions.
// Internal-inconsistency failures (Reed–Solomon bound violations,
// bit-buffer overflow) are programming errors and panic instead of
// returning one of these.
var (
	ErrEmptyPayload       = errors.New("qrcode: segment payload is empty")
	ErrInvalidNumeric     = errors.New("qrcode: numeric segment contains a non-digit byte")
	ErrInvalidAlphanum    = errors.New("qrcode: alphanumeric segment contains a byte outside the 45-character table")
	ErrInvalidKanji       = errors.New("qrcode: kanji segment has an odd length or a pair outside the Shift-JIS double-byte ranges")
	ErrInvalidFnc1App     = errors.New("qrcode: FNC1 second-position application indicator must be one ASCII letter or two ASCII digits")
	ErrMicroExclusive     = errors.New("qrcode: MicroQR extra mode cannot be combined with structured append or an ECI header")
	ErrNoPartsProvided    = errors.New("qrcode: structured append requires between 1 and 16 parts")
	ErrTooManyParts       = errors.New("qrcode: structured append supports at most 16 parts")
	ErrMicroHighECUnavail = errors.New("qrcode: EC level High is unavailable for the requested Micro QR version")
	ErrCapacityExceeded   = errors.New("qrcode: no symbol version in the permitted range can hold the requested segments")
)
