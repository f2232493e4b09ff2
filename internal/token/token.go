// Package token issues and verifies the signed bearer tokens handed out on
// login. Tokens are compact HS256 JWTs: base64url(header).base64url(claims).
// base64url(signature), with the signature keyed by a single server secret.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a freshly issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrEmptySecret = errors.New("token: signing secret is empty")

	// ErrInvalid is wrapped by every decode failure.
	ErrInvalid   = errors.New("token: invalid")
	ErrMalformed = fmt.Errorf("%w: malformed", ErrInvalid)
	ErrSignature = fmt.Errorf("%w: signature mismatch", ErrInvalid)
	ErrExpired   = fmt.Errorf("%w: expired", ErrInvalid)
)

// Claims is what a token asserts about its holder.
type Claims struct {
	Subject   int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// wireClaims is the JSON payload: registered sub/iat/exp plus username.
type wireClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with an immutable secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Codec)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Codec. The secret is copied so later mutation of the caller's
// slice cannot change signatures.
func New(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	c := &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encode stamps IssuedAt/ExpiresAt onto claims and returns the signed token.
// Any IssuedAt/ExpiresAt already set on claims is ignored.
func (c *Codec) Encode(claims Claims) (string, error) {
	now := c.now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, wireClaims{
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claims.Subject, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies raw and returns its claims. Failures wrap ErrInvalid and are
// one of ErrMalformed, ErrSignature or ErrExpired.
func (c *Codec) Decode(raw string) (Claims, error) {
	var wc wireClaims
	_, err := jwt.ParseWithClaims(raw, &wc, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return Claims{}, classify(err)
	}

	id, err := strconv.ParseInt(wc.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Claims{}, ErrMalformed
	}

	out := Claims{Subject: id, Username: wc.Username}
	if wc.IssuedAt != nil {
		out.IssuedAt = wc.IssuedAt.Time.UTC()
	}
	if wc.ExpiresAt != nil {
		out.ExpiresAt = wc.ExpiresAt.Time.UTC()
	}
	return out, nil
}

func (c *Codec) keyFunc(*jwt.Token) (any, error) {
	return c.secret, nil
}

// classify maps jwt's error tree onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrSignature
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
