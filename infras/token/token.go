package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"rentello/shared/timezone"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims are the registered claims the gateway reads off the remote bearer
// token. The remote API signs and verifies its own tokens; the gateway only
// inspects them to decide whether a stored credential is still worth
// presenting.
type Claims struct {
	jwt.RegisteredClaims
}

// Inspector parses remote-issued bearer tokens without verifying their
// signature.
type Inspector interface {
	Inspect(tokenString string) (*Claims, error)
}

type inspectorImpl struct {
	parser *jwt.Parser
}

func NewInspector() Inspector {
	return &inspectorImpl{
		parser: jwt.NewParser(),
	}
}

func (i *inspectorImpl) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(timezone.Now()) {
		return nil, ErrExpiredToken
	}

	return claims, nil
}
