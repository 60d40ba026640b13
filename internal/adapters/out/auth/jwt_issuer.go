package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates the bearer token failed verification.
var ErrInvalidToken = errors.New("token is invalid")

// TokenClaims is what a verified token carries.
type TokenClaims struct {
	AccountID kernel.UUID
	Role      account.Role
}

// JWTIssuer mints and verifies HS256 bearer tokens carrying the account id
// and role.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer creates an issuer signing with the given secret.
func NewJWTIssuer(secret string, ttl time.Duration) JWTIssuer {
	return JWTIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for a freshly authenticated account.
func (i JWTIssuer) Issue(accountID kernel.UUID, role account.Role) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  accountID.String(),
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a bearer token and returns its claims.
func (i JWTIssuer) Verify(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	accountID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	roleString, ok := claims["role"].(string)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	role, err := account.RoleFromString(roleString)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return TokenClaims{AccountID: accountID, Role: role}, nil
}
