package middleware

import (
	"fmt"
	"net/http"
	"strings"

	im "pedigree/api/models/constants/inheritance-mode"
	e "pedigree/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a supported inheritance `mode` HTTP query parameter was provided
*/
func MandateInheritanceModeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		mode := c.QueryParam("mode")
		if len(mode) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, e.CreateSimpleBadRequest("Missing 'mode' query parameter!"))
		}

		if !im.IsKnownInheritanceMode(mode) {
			known := make([]string, 0)
			for _, m := range im.All() {
				known = append(known, string(m))
			}
			return echo.NewHTTPError(http.StatusBadRequest,
				e.CreateSimpleBadRequest(fmt.Sprintf("Unknown mode '%s'; expected one of %s", mode, strings.Join(known, ", "))))
		}

		return next(c)
	}
}
