package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the principal resolved from a bearer credential.
type Identity struct {
	Email string
}

// TokenVerifier resolves a bearer token to a verified identity. JWTAuth is
// the default implementation; anything able to vouch for an email claim
// satisfies it.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTAuth issues and verifies HS256 tokens carrying an email claim.
type JWTAuth struct {
	secret []byte
	expiry time.Duration
}

func NewJWTAuth(secret string, expiry time.Duration) *JWTAuth {
	return &JWTAuth{secret: []byte(secret), expiry: expiry}
}

func (j *JWTAuth) Issue(email string) (string, error) {
	claims := JWTClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWTAuth) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, errors.New("invalid token")
	}
	return &Identity{Email: claims.Email}, nil
}
