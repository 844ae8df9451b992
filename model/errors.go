package model

import "errors"

var (
	ErrInputTooShort  = errors.New("sequence too short")
	ErrInvalidRegion  = errors.New("invalid region")
	ErrLookupFailure  = errors.New("lookup failure")
	ErrUnknownKey     = errors.New("unknown key")
	ErrLengthMismatch = errors.New("notes and durations differ in length")
	ErrUpstream       = errors.New("protein database error")
)
