package vo

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrEmailTaken = errors.New("email already registered")
var ErrCredentialNotFound = errors.New("credential not found")
var ErrInvalidEmail = errors.New("invalid email")

// ErrWeakPassword covers passwords outside the 8..72 byte window bcrypt can hash.
var ErrWeakPassword = errors.New("password must be between 8 and 72 bytes")

// ErrHashCostTooHigh rejects caller supplied hashes whose cost exceeds the verification limit.
var ErrHashCostTooHigh = errors.New("hash cost exceeds verification limit")
