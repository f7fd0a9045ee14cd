// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	CodeHTTPError     = "HTTP_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// Response is the envelope: success, the HTTP status repeated as code, a
// human message and either data or error.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the stable machine code, e.g. "CAKE_NOT_FOUND".
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Problem is implemented by the domain errors.
type Problem interface {
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode, Details: details},
	})
}

// Fail renders p. Server side failures never expose their details.
func Fail(c echo.Context, p Problem) error {
	details := p.Details()
	if p.HTTPCode() >= http.StatusInternalServerError {
		details = ""
	}

	return Error(c, p.HTTPCode(), p.ErrorCode(), p.Message(), details)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

func Internal(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, "Internal server error, please try again later", "")
}
