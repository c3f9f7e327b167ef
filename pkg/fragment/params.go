package fragment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Params carries the request parameters handed to a producer. Values
// are strings; use Int and Bool for typed reads.
type Params map[string]string

// Get returns the value for key, or fallback when the key is absent.
func (p Params) Get(key, fallback string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

// Int returns the value for key parsed as an integer, or fallback when
// the key is absent or not numeric.
func (p Params) Int(key string, fallback int) int {
	v, ok := p[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Bool returns the value for key parsed as a boolean, or fallback when
// the key is absent or not a boolean.
func (p Params) Bool(key string, fallback bool) bool {
	v, ok := p[key]
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// ParamsFromQuery flattens query values into Params, keeping the first
// value for repeated keys. The token parameter is skipped; it is
// reserved for signed tokens.
func ParamsFromQuery(q url.Values) Params {
	p := make(Params, len(q))
	for key, vals := range q {
		if key == tokenParam || len(vals) == 0 {
			continue
		}
		p[key] = vals[0]
	}
	return p
}

// tokenParam is the query parameter carrying a signed params token.
const tokenParam = "token"

// signatureLength is the number of HMAC-SHA256 bytes kept in a token
// signature. Truncation keeps tokens short; 16 bytes is still far
// beyond brute force.
const signatureLength = 16

// Codec encodes Params into signed, URL-safe tokens and decodes them
// back. Tokens are msgpack payloads with a truncated HMAC-SHA256
// signature, so clients can hold them but not alter them.
type Codec struct {
	key []byte
}

// NewCodec creates a Codec using key for signing. Keys shorter than 32
// bytes are stretched with SHA-256; an empty key is rejected.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("fragment: empty signing key")
	}
	if len(key) < 32 {
		sum := sha256.Sum256(key)
		key = sum[:]
	}
	return &Codec{key: key}, nil
}

// Encode serializes p and signs it, returning a URL-safe token.
func (c *Codec) Encode(p Params) (string, error) {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("fragment: encode params: %w", err)
	}
	return c.sign(data), nil
}

// Decode verifies a token's signature and deserializes its payload.
// Malformed tokens return ErrInvalidToken; valid-looking tokens with a
// wrong signature return ErrBadSignature.
func (c *Codec) Decode(token string) (Params, error) {
	data, err := c.verify(token)
	if err != nil {
		return nil, err
	}
	var p Params
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return p, nil
}

// sign produces "payload.signature" with both parts base64url encoded
// and the signature truncated to signatureLength bytes.
func (c *Codec) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:signatureLength])
	return b64 + "." + sig
}

// verify checks the signature and returns the decoded payload.
func (c *Codec) verify(token string) ([]byte, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidToken)
	}
	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	expected := mac.Sum(nil)[:signatureLength]
	if !hmac.Equal(sig, expected) {
		return nil, ErrBadSignature
	}
	return data, nil
}
