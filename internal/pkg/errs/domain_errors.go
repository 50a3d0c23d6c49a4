package errs

import "errors"

// Sentinels shared across the intake layers
var (
	// Validation errors
	ErrValidationFailed = errors.New("booking validation failed")

	// Throttle errors
	ErrRateLimited     = errors.New("submission rate limit reached")
	ErrThrottleStorage = errors.New("throttle storage unavailable")
	ErrCorruptThrottle = errors.New("corrupt throttle record")

	// Catalog errors
	ErrInvalidPrice = errors.New("catalog price is not a valid amount")
	ErrCatalogLoad  = errors.New("catalog could not be loaded")

	// Dispatch errors
	ErrDispatchFailed = errors.New("outbound dispatch failed")
)
