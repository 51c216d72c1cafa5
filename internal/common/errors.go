// Package common defines shared constants and sentinel errors used across
// client and server layers of EcoScan. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Session errors.
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")

	// Workflow errors.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidState         = errors.New("invalid workflow state")
	ErrUpload               = errors.New("image upload failed")
	ErrClassification       = errors.New("classification failed")
	ErrStorage              = errors.New("storage error")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
