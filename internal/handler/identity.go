package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"jobtracker/internal/auth"
	"jobtracker/internal/errors"
)

// currentUserID extracts the caller's user id from the JWT parsed by
// the auth middleware. Handlers behind the secured group always have
// one; a missing or foreign claims type means the middleware was
// bypassed and is treated as unauthenticated.
func currentUserID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing authentication token",
			Code:  "UNAUTHENTICATED",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "UNAUTHENTICATED",
		})
	}
	return claims.UserID, nil
}

// domainError converts a service error into an echo HTTP error using
// the shared domain mapping.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
