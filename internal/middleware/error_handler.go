package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"viewcrumbs_echo/internal/breadcrumbs"
	"viewcrumbs_echo/internal/handlers"
)

// ErrorRenderer renders an error page
type ErrorRenderer interface {
	RenderError(c echo.Context, code int, title, message string) error
}

var _ ErrorRenderer = (*handlers.Pages)(nil)

// NewErrorHandler creates a custom error handler for Echo. Breadcrumb
// configuration errors are programmer errors and always end in a 500.
func NewErrorHandler(pages ErrorRenderer, log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, errorTitle, errorMessage := describe(err)

		log.Error("request failed",
			zap.Int("status", code),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(code); err != nil {
				log.Error("failed to write error response", zap.Error(err))
			}
			return
		}

		if renderErr := pages.RenderError(c, code, errorTitle, errorMessage); renderErr != nil {
			// Fallback to plain text if the error page itself fails
			log.Error("failed to render error page", zap.Error(renderErr))
			if !c.Response().Committed {
				_ = c.String(code, errorMessage)
			}
		}
	}
}

// describe maps err to a status code, title and user facing message
func describe(err error) (int, string, string) {
	switch {
	case errors.Is(err, breadcrumbs.ErrNotImplemented),
		errors.Is(err, breadcrumbs.ErrInvalidBreadcrumb),
		errors.Is(err, breadcrumbs.ErrNoReverseMatch),
		errors.Is(err, breadcrumbs.ErrNoModel):
		return http.StatusInternalServerError, "Internal Server Error", "This page is misconfigured."
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, "Internal Server Error", "Something went wrong. Please try again later."
	}

	code := he.Code
	errorMessage, _ := he.Message.(string)

	var errorTitle, fallback string
	switch code {
	case http.StatusNotFound:
		errorTitle, fallback = "Page Not Found", "The page you're looking for doesn't exist."
	case http.StatusForbidden:
		errorTitle, fallback = "Access Denied", "You don't have permission to access this resource."
	case http.StatusUnauthorized:
		errorTitle, fallback = "Unauthorized", "Please log in to continue."
	case http.StatusBadRequest:
		errorTitle, fallback = "Bad Request", "The request could not be processed."
	case http.StatusMethodNotAllowed:
		errorTitle, fallback = "Method Not Allowed", "The request could not be processed."
	default:
		errorTitle, fallback = "Internal Server Error", "Something went wrong. Please try again later."
	}
	if errorMessage == "" || errorMessage == http.StatusText(code) {
		errorMessage = fallback
	}
	return code, errorTitle, errorMessage
}
