package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate checks request DTO struct tags.  A single instance caches the
// parsed tags and is safe for concurrent use.
var validate = validator.New()

// bindAndValidate binds the JSON body into dst and runs struct
// validation.  It returns a user-facing error message, or "" on success.
func bindAndValidate(c echo.Context, dst interface{}) string {
	if err := c.Bind(dst); err != nil {
		return "invalid body"
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return "invalid field: " + verrs[0].Field()
		}
		return "invalid body"
	}
	return ""
}

// getUserID extracts the user_id stored by the JWT middleware and
// converts it to uint64.  The JWT library decodes numeric claims as
// float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
