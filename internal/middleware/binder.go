package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictBinder decodes JSON bodies with unknown fields disallowed, so a
// request with fields outside the declared shape fails before any handler
// logic runs. Non-JSON requests fall back to echo's default binding.
type StrictBinder struct{}

func (b *StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body: "+err.Error())
		}
		return nil
	}

	return (&echo.DefaultBinder{}).Bind(i, c)
}
