package hash

import "errors"

var (
	// ErrInvalidHash is the root of every parse failure. *FormatError unwraps to it.
	ErrInvalidHash = errors.New("hash: invalid bcrypt hash")

	// ErrMismatchedPassword is returned by Hasher.Compare when the plaintext does not match.
	ErrMismatchedPassword = errors.New("hash: password does not match hash")

	// ErrEncodeLength is returned by EncodeN when n is negative or exceeds the input.
	ErrEncodeLength = errors.New("hash: encode length out of range")

	// ErrInvalidEncoding is returned by Decode for input outside the bcrypt alphabet.
	ErrInvalidEncoding = errors.New("hash: invalid bcrypt base64")
)

// FormatError reports a structurally malformed hash string.
type FormatError struct {
	Reason string
}

func formatError(reason string) *FormatError {
	return &FormatError{Reason: reason}
}

func (e *FormatError) Error() string {
	return "hash: " + e.Reason
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidHash
}
