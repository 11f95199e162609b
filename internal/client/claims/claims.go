// Package claims decodes the payload of a bearer token without verifying its
// signature. The result is advisory: it lets the client skip requests that
// would certainly be rejected because the token has already expired.
//
// Expiry semantics live only here (see IsExpired); other packages must not
// re-implement the comparison.
package claims

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dmitrijs2005/workforce/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned by Decode for tokens whose structure
// cannot be parsed.
var ErrMalformedToken = common.ErrMalformedToken

// Claims is the subset of token claims the client cares about.
//
// Subject is kept as any because some backends (Flask-JWT-Extended among
// them) put the numeric user id into "sub".
type Claims struct {
	ExpiresAt *Timestamp       `json:"exp,omitempty"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
	NotBefore *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer    string           `json:"iss,omitempty"`
	Audience  jwt.ClaimStrings `json:"aud,omitempty"`
	Subject   any              `json:"sub,omitempty"`
	ID        string           `json:"jti,omitempty"`
	Type      string           `json:"type,omitempty"`
}

// Timestamp is a NumericDate kept at the precision the issuer wrote it in.
// jwt.NumericDate rounds to jwt.TimePrecision, which would move a fractional
// "exp" across the expiry boundary.
type Timestamp float64

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("could not parse NumericDate: %w", err)
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("could not parse NumericDate %q", n)
	}
	*t = Timestamp(f)
	return nil
}

// Unix returns the timestamp in whole seconds.
func (t Timestamp) Unix() int64 { return int64(math.Floor(float64(t))) }

// UnixMilli returns the timestamp in milliseconds, fraction included.
func (t Timestamp) UnixMilli() float64 { return float64(t) * 1000 }

// Time converts the timestamp to a time.Time at millisecond precision.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(math.Floor(t.UnixMilli())))
}

var _ jwt.Claims = (*Claims)(nil)

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == nil {
		return nil, nil
	}
	return jwt.NewNumericDate(c.ExpiresAt.Time()), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error)      { return c.NotBefore, nil }
func (c *Claims) GetIssuer() (string, error)                   { return c.Issuer, nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)       { return c.Audience, nil }

// GetSubject renders the subject as a string whatever its JSON type.
func (c *Claims) GetSubject() (string, error) {
	switch v := c.Subject.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode parses the token's header and payload segments.
// It fails with ErrMalformedToken when the token is not three dot-separated
// segments, a segment is not valid base64url, or a segment is not a JSON
// object. No signature verification is performed.
func Decode(token string) (*Claims, error) {
	c := &Claims{}
	if _, _, err := parser.ParseUnverified(token, c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return c, nil
}

// IsExpired reports whether exp*1000 <= now in milliseconds. The boundary is
// inclusive. Claims without "exp" never expire on the client side.
func IsExpired(c *Claims, now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.UnixMilli() <= float64(now.UnixMilli())
}

// Check decodes token and reports ErrMalformedToken or common.ErrTokenExpired.
// A nil error means the token may be sent.
func Check(token string, now time.Time) (*Claims, error) {
	c, err := Decode(token)
	if err != nil {
		return nil, err
	}
	if IsExpired(c, now) {
		return c, common.ErrTokenExpired
	}
	return c, nil
}
