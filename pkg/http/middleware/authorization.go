package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"

	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/http/jwt"
	"github.com/CloudApiHackathon/CloudApiHackathon-Scrutiny/pkg/log"
)

// Locals keys set on successful authentication.
const (
	CLAIMS   = "claims"
	IDENTITY = "identity"
)

// Identity is the caller resolved from the relational store.
type Identity struct {
	UserId          string `json:"userId"`
	TokenIdentifier string `json:"tokenIdentifier"`
	Username        string `json:"username"`
	Email           string `json:"email"`
}

// ErrIdentityNotFound is returned by an IdentityResolver when no user row
// matches the token subject.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityResolver looks up the user row for a verified token subject.
type IdentityResolver interface {
	Resolve(ctx context.Context, tokenIdentifier string) (*Identity, error)
}

// AuthorizationMiddleware gates a request behind a verified session token and
// a resolved user row. It runs before every handler that needs a caller
// identity and has no side effect beyond the read lookup.
func AuthorizationMiddleware(secretKey string, resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get("Authorization")
		if aToken == "" {
			return http.WithRepErr(c, http.AuthorizationEmpty, c.Path())
		}

		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErr(c, http.TokenFormatIncorrect, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErr(c, http.TokenExpired, c.Path())
			}
			log.Errorf("parse token failed: %v", err)
			return http.WithRepErr(c, http.InvalidToken, c.Path())
		}

		identity, err := resolver.Resolve(c.Context(), claims.UserId)
		if err != nil {
			if errors.Is(err, ErrIdentityNotFound) {
				return http.WithRepErr(c, http.UserNotExist, c.Path())
			}
			log.Errorw("resolve identity failed", "subject", claims.UserId, "error", err)
			return http.WithRepErr(c, http.InternalError, c.Path())
		}

		c.Locals(CLAIMS, claims)
		c.Locals(IDENTITY, identity)
		return c.Next()
	}
}

// CallerIdentity reads the resolved identity from fiber locals.
func CallerIdentity(c *fiber.Ctx) *Identity {
	if identity, ok := c.Locals(IDENTITY).(*Identity); ok {
		return identity
	}
	return nil
}
