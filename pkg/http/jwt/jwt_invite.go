package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

/**
 * @time: 2024/11/9 16:22
 * @file: jwt_invite.go
 * @description: invitation capability token
 */

// InviteClaims binds a meeting (and optionally a target user) to a signed,
// short lived join capability. The legacy digest-only scheme could not be
// decoded server side and is not supported.
type InviteClaims struct {
	MeetingId string `json:"meetingId"`
	UserId    string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// GenInviteToken issues a signed invitation token for meetingId. userId may
// be empty for an open invitation link.
func GenInviteToken(meetingId, userId string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &InviteClaims{
		MeetingId: meetingId,
		UserId:    userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issUser,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// ParseInviteToken verifies an invitation token and returns its claims.
func ParseInviteToken(token, secretKey string) (*InviteClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &InviteClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*InviteClaims)
	if !ok || !parsed.Valid || claims.MeetingId == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
