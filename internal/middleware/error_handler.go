package middleware

import (
	"log"
	"net/http"

	"github.com/hotelsuite/hotel-management-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as the API's JSON error envelope.
// Handlers return echo.HTTPError with the status already decided; anything
// else is an unexpected failure and reported as a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
