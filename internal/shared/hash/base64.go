package hash

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// bcryptEncoding packs 6-bit groups exactly like standard base64 but over the
// bcrypt alphabet and without padding.
var bcryptEncoding = base64.NewEncoding(alphabet).WithPadding(base64.NoPadding)

// EncodeN encodes the first n bytes of src.
// A trailing group of 1 or 2 bytes yields 2 or 3 characters.
func EncodeN(src []byte, n int) (string, error) {
	if n < 0 || n > len(src) {
		return "", fmt.Errorf("%w: %d of %d bytes", ErrEncodeLength, n, len(src))
	}
	return bcryptEncoding.EncodeToString(src[:n]), nil
}

// Encode encodes all but the last byte of src.
// The KDF output buffer is 24 bytes of which only 23 are ever encoded.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return bcryptEncoding.EncodeToString(src[:len(src)-1])
}

// EncodedLen returns the number of characters EncodeN produces for n bytes.
func EncodedLen(n int) int {
	return bcryptEncoding.EncodedLen(n)
}

// Decode reverses EncodeN. Unused low bits of the final character are ignored.
func Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", ErrInvalidEncoding)
	}
	decoded, err := bcryptEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return decoded, nil
}
