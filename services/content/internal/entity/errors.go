package entity

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrValidation       = errors.New("validation failed")
)
