package middleware

// identity.go holds helpers shared by the rate limit and cache
// middleware for attributing a request to a user when composing keys.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user id from the context as a
// string, or "guest" when the request is unauthenticated.  JWTAuth
// stores the raw "sub" claim, which the JWT library decodes as float64
// for numeric ids.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case nil:
		return "guest"
	case string:
		if v == "" {
			return "guest"
		}
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
