package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

/**
 * @time: 2024/11/3 21:40
 * @file: jwt.go
 * @description: session token issue / verify
 */

type AuthClaims struct {
	UserId string `json:"userId"`
	jwt.RegisteredClaims
}

var (
	issUser = "scrutiny"

	ErrInvalidToken = errors.New("invalid token")
)

// GenToken issues the access_token and refresh_token pair for a session.
func GenToken(userId string, secretKey []byte, accessExpire, refreshExpire time.Duration) (aToken, rToken string, err error) {

	now := time.Now()

	// aToken
	aClaims := &AuthClaims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issUser,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessExpire)),
		},
	}
	aToken, aErr := jwt.NewWithClaims(jwt.SigningMethodHS256, aClaims).SignedString(secretKey)
	if aErr != nil {
		log.Errorf("jwt.NewWithClaims err: %v", aErr)
		return "", "", aErr
	}

	// rToken carries the subject too, a refresh exchange must not trust
	// anything but the token itself
	rClaims := &AuthClaims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issUser,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshExpire)),
		},
	}
	rToken, rErr := jwt.NewWithClaims(jwt.SigningMethodHS256, rClaims).SignedString(secretKey)
	if rErr != nil {
		log.Errorf("jwt.NewWithClaims err: %v", rErr)
		return "", "", rErr
	}

	return aToken, rToken, nil
}

// ParseToken verifies the access_token signature and expiry.
// Failure reasons surface as jwt/v5 sentinel errors (ErrTokenExpired,
// ErrTokenSignatureInvalid) so callers can map them to responses.
func ParseToken(aToken, secretKey string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(aToken, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if authClaims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return authClaims, nil
	}
	return nil, ErrInvalidToken
}

// RefreshToken exchanges a valid refresh_token for a new token pair. The new
// pair is signed for the subject embedded in the refresh token itself.
func RefreshToken(rToken, secretKey string, accessExpire, refreshExpire time.Duration) (map[string]string, error) {
	newToken := make(map[string]string)

	var refreshClaims AuthClaims
	_, err := jwt.ParseWithClaims(rToken, &refreshClaims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		log.Errorf("jwt.ParseWithClaims err: %v", err)
		return newToken, ErrInvalidToken
	}

	if refreshClaims.ExpiresAt == nil || time.Now().After(refreshClaims.ExpiresAt.Time) {
		return newToken, ErrInvalidToken
	}
	// tokens minted without a subject cannot be exchanged
	if refreshClaims.UserId == "" {
		return newToken, ErrInvalidToken
	}

	newAToken, newRToken, err := GenToken(refreshClaims.UserId, []byte(secretKey), accessExpire, refreshExpire)
	if err != nil {
		return newToken, err
	}

	newToken["accessToken"] = newAToken
	newToken["refreshToken"] = newRToken

	return newToken, nil
}
