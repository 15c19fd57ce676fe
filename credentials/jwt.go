package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xstring"
)

const defaultJWTTokenTTL = time.Hour

var (
	errNoSigningKey         = xerrors.Wrap(errors.New("jwt signing key is not set"))
	errCouldNotSignJWTToken = xerrors.Wrap(errors.New("could not sign jwt token"))
)

var _ fmt.Stringer = (*JWT)(nil)

// JWT mints self-signed JSON web tokens and sends them as bearer tokens.
// A token is reused until half of its TTL passed.
type JWT struct {
	signingMethod jwt.SigningMethod
	key           interface{}
	keyID         string
	issuer        string
	subject       string
	audience      []string
	tokenTTL      time.Duration
	clock         clockwork.Clock
	sourceInfo    string

	mu        sync.Mutex
	token     string
	refreshAt time.Time
}

type JWTOption func(c *JWT)

// WithSigningMethod sets the signing method, HS256 by default
func WithSigningMethod(method jwt.SigningMethod) JWTOption {
	return func(c *JWT) {
		c.signingMethod = method
	}
}

func WithKeyID(id string) JWTOption {
	return func(c *JWT) {
		c.keyID = id
	}
}

func WithIssuer(issuer string) JWTOption {
	return func(c *JWT) {
		c.issuer = issuer
	}
}

func WithAudience(audience ...string) JWTOption {
	return func(c *JWT) {
		c.audience = append(c.audience, audience...)
	}
}

func WithTokenTTL(ttl time.Duration) JWTOption {
	return func(c *JWT) {
		c.tokenTTL = ttl
	}
}

func WithClock(clock clockwork.Clock) JWTOption {
	return func(c *JWT) {
		c.clock = clock
	}
}

func WithJWTSourceInfo(sourceInfo string) JWTOption {
	return func(c *JWT) {
		c.sourceInfo = sourceInfo
	}
}

// NewJWTCredentials makes credentials signing tokens for subject with key.
// Key type must match the signing method: []byte for HMAC, *rsa.PrivateKey for RSA, etc.
func NewJWTCredentials(subject string, key interface{}, opts ...JWTOption) (*JWT, error) {
	c := &JWT{
		signingMethod: jwt.SigningMethodHS256,
		key:           key,
		subject:       subject,
		tokenTTL:      defaultJWTTokenTTL,
		clock:         clockwork.NewRealClock(),
		sourceInfo:    stack.Record(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.key == nil {
		return nil, xerrors.WithStackTrace(errNoSigningKey)
	}

	return c, nil
}

func (c *JWT) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	token, err := c.Token()
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return map[string]string{
		authorizationMetadataKey: "Bearer " + token,
	}, nil
}

func (c *JWT) RequireTransportSecurity() bool {
	return false
}

// Token returns cached token or signs a new one
func (c *JWT) Token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.token != "" && now.Before(c.refreshAt) {
		return c.token, nil
	}

	t := jwt.Token{
		Header: map[string]interface{}{
			"typ": "JWT",
			"alg": c.signingMethod.Alg(),
			"kid": c.keyID,
		},
		Claims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   c.subject,
			Audience:  c.audience,
			IssuedAt:  jwt.NewNumericDate(now.UTC()),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenTTL).UTC()),
			ID:        uuid.NewString(),
		},
		Method: c.signingMethod,
	}
	token, err := t.SignedString(c.key)
	if err != nil {
		return "", xerrors.WithStackTrace(fmt.Errorf("%w: %w", errCouldNotSignJWTToken, err))
	}
	c.token = token
	c.refreshAt = now.Add(c.tokenTTL / 2)

	return c.token, nil
}

func (c *JWT) String() string {
	buffer := xstring.Buffer()
	defer buffer.Free()
	fmt.Fprintf(
		buffer,
		"JWT{Method:%s,KeyID:%s,Issuer:%q,Subject:%q,Audience:%v,TokenTTL:%s,From:%q}",
		c.signingMethod.Alg(),
		c.keyID,
		c.issuer,
		c.subject,
		c.audience,
		c.tokenTTL,
		c.sourceInfo,
	)

	return buffer.String()
}
