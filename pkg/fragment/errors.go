package fragment

import "errors"

var (
	// ErrNotFound is returned when no producer is registered under the
	// requested name.
	ErrNotFound = errors.New("fragment: not found")

	// ErrDuplicate is returned by Register when the name is taken.
	ErrDuplicate = errors.New("fragment: duplicate name")

	// ErrNilProducer is returned by Register for a nil producer.
	ErrNilProducer = errors.New("fragment: nil producer")

	// ErrInvalidToken is returned when a params token is malformed or
	// cannot be decoded.
	ErrInvalidToken = errors.New("fragment: invalid params token")

	// ErrBadSignature is returned when a params token fails HMAC
	// verification.
	ErrBadSignature = errors.New("fragment: bad token signature")
)

// IsNotFound reports whether err means the fragment does not exist.
// Handlers map it to 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadParams reports whether err means the request parameters were
// unusable. Handlers map it to 400.
func IsBadParams(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrBadSignature)
}
