package http

import (
	"net/http"
	"strings"

	"rental/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// JWTAuth returns a middleware that requires a valid HS256 bearer token
// on every request it guards. The token subject is stored in the request
// context under "subject" for downstream handlers.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := auth.ParseAccessToken(secret, token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			ctx.Set("subject", claims.Subject)
			return next(ctx)
		}
	}
}
