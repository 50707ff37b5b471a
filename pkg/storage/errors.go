package storage

import "errors"

var (
	// Validation errors
	ErrInvalidKey    = errors.New("storage key is empty or contains path separators")
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// I/O errors - wrapped with the underlying cause for debugging
	ErrFailedToCreateDirectory = errors.New("failed to create storage directory")
	ErrFailedToReadRecord      = errors.New("failed to read record")
	ErrFailedToWriteRecord     = errors.New("failed to write record")
	ErrFailedToDeleteRecord    = errors.New("failed to delete record")
	ErrFailedToStatRecord      = errors.New("failed to stat record")

	// Redis errors
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
)
