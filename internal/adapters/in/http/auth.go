package http

import (
	"net/http"
	"strings"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// authClaims is the token payload the workflow relies on. The identity
// service signs tokens carrying the user's directory ID, role, and account
// status.
type authClaims struct {
	Role   string `json:"role"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

// BearerAuth returns middleware that verifies the Authorization header and
// stores the authenticated caller in the request context. Tokens must be
// HMAC-signed with the shared secret.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := &authClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			id, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
			}
			caller, err := user.NewCaller(id, user.Role(claims.Role), user.Status(claims.Status))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid role or status claim")
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

// callerFrom retrieves the authenticated caller stored by BearerAuth.
func callerFrom(ctx echo.Context) (user.Caller, error) {
	caller, ok := ctx.Get(callerContextKey).(user.Caller)
	if !ok {
		return user.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "no authenticated caller")
	}
	return caller, nil
}
