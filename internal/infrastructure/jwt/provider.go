package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-event-checkin/internal/config"
	"github.com/go-event-checkin/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the JWT payload. The subject is the registrant's mobile
// number; nothing else is encoded, so tokens carry no profile data.
type Claims struct {
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs bound to a mobile-number subject.
// Tokens are stateless: there is no server-side session and no revocation
// before expiry. That is an accepted trade-off given the short TTL.
type Provider struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}
	return &Provider{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.TokenTTL,
		now:    time.Now,
	}, nil
}

// WithClock replaces the provider's time source. Tests use it to cross the
// expiry boundary without sleeping.
func (p *Provider) WithClock(now func() time.Time) *Provider {
	p.now = now
	return p
}

// Sign issues a token asserting the given mobile-number identity until the
// configured TTL elapses.
func (p *Provider) Sign(mobile string) (string, error) {
	now := p.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   mobile,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses and validates a token, returning the mobile number it binds.
// Expiry is reported as domain.ErrTokenExpired; every other signature or
// format failure as domain.ErrTokenInvalid.
func (p *Provider) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%v: %w", err, domain.ErrTokenExpired)
		}
		return "", fmt.Errorf("%v: %w", err, domain.ErrTokenInvalid)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("missing subject: %w", domain.ErrTokenInvalid)
	}
	return claims.Subject, nil
}
