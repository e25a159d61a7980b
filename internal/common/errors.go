// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (client-facing once mapped by the HTTP layer).
	ErrorCredentialsTaken     = errors.New("credentials taken")
	ErrorCredentialsIncorrect = errors.New("credentials incorrect")
	ErrorAccessDenied         = errors.New("access to resource denied")
	ErrorInternal             = errors.New("internal error")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
