package echo

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	appmanager "github.com/rafaelmp/employee-import/internal/application/manager"
	manager "github.com/rafaelmp/employee-import/internal/domain/manager"
)

const managerContextKey = "auth.manager"
const tokenContextKey = "auth.token"

type tokenResolver interface {
	FindByToken(ctx context.Context, tokenHash string) (manager.Manager, error)
}

// RequireAuth resolves the bearer token to a manager and stores it on the
// request context.
func RequireAuth(resolver tokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
					Code:    "unauthorized",
					Message: "authentication required",
				}})
			}

			m, err := resolver.FindByToken(c.Request().Context(), appmanager.HashToken(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
					Code:    "unauthorized",
					Message: "invalid or expired token",
				}})
			}

			c.Set(managerContextKey, m)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

func currentManager(c echo.Context) (manager.Manager, bool) {
	m, ok := c.Get(managerContextKey).(manager.Manager)
	return m, ok
}

func currentToken(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}
