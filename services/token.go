package services

import (
	"fmt"
	"gin-videoapi/constants"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenLifetime  = 15 * time.Minute
	RefreshTokenLifetime = 30 * 24 * time.Hour
)

type TokenClaims struct {
	Type  string `json:"type"`
	Fresh bool   `json:"fresh,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func CreateToken(secret []byte, identity string, tokenType string, fresh bool) (string, error) {
	lifetime := AccessTokenLifetime
	if tokenType == constants.TokenTypeRefresh {
		lifetime = RefreshTokenLifetime
		fresh = false
	}

	now := time.Now()
	claims := TokenClaims{
		Type:  tokenType,
		Fresh: fresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func ParseToken(secret []byte, tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
