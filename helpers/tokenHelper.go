package helpers

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("token is invalid or expired")

// GenerateToken signs a token for the given identity, valid for one hour.
func GenerateToken(username string, secret string) (string, error) {
	claims := &SignedDetails{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateToken checks the signature and expiry and returns the claims.
func ValidateToken(signedToken string, secret string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
