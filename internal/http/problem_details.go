package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// problemDetails is the RFC 7807 error body. Validation failures carry a
// field→message map in Errors.
type problemDetails struct {
	Type    string            `json:"type"`
	Title   string            `json:"title"`
	Status  int               `json:"status"`
	TraceID string            `json:"traceId,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewErrorHandler translates errors bubbling out of handlers into
// application/problem+json. Exceptions keep their own status; anything
// unrecognized is logged with its trace id and becomes a generic 500.
func NewErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := c.Response().Header().Get(echo.HeaderXRequestID)

		var valErr *apperrors.ValidationException
		if errors.As(err, &valErr) {
			writeProblem(c, problemDetails{
				Type:    "https://datatracker.ietf.org/doc/html/rfc7807",
				Title:   "Validation failed.",
				Status:  http.StatusBadRequest,
				TraceID: traceID,
				Errors:  valErr.Fields,
			})
			return
		}

		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			writeProblem(c, problemDetails{
				Type:    fmt.Sprintf("https://httpstatuses.com/%d", appErr.StatusCode),
				Title:   appErr.Message,
				Status:  appErr.StatusCode,
				TraceID: traceID,
			})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			writeProblem(c, problemDetails{
				Type:    fmt.Sprintf("https://httpstatuses.com/%d", httpErr.Code),
				Title:   fmt.Sprintf("%v", httpErr.Message),
				Status:  httpErr.Code,
				TraceID: traceID,
			})
			return
		}

		log.Printf("unhandled error for %s (traceId=%s): %v", c.Request().URL.Path, traceID, err)
		writeProblem(c, problemDetails{
			Type:    "https://httpstatuses.com/500",
			Title:   "An unexpected error occurred.",
			Status:  http.StatusInternalServerError,
			TraceID: traceID,
		})
	}
}

func writeProblem(c echo.Context, p problemDetails) {
	c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
	if err := c.JSON(p.Status, p); err != nil {
		log.Printf("writing problem response failed: %v", err)
	}
}
