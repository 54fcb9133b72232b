package httperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error is the single error type handlers and the store return. Status-code
// knowledge lives here instead of being scattered through business logic.
type Error struct {
	Status  int      `json:"-"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(errs ...string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Errors: errs}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Auth(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", cause: cause}
}

// FromStore remaps gorm sentinel errors at the gateway boundary.
// Requires gorm.Config{TranslateError: true} so unique-constraint violations
// surface as gorm.ErrDuplicatedKey on every driver.
func FromStore(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(conflictMsg)
	default:
		return Internal(err)
	}
}

// Respond writes err as the JSON error body {message, errors?}. Unknown error
// values become a 500; their cause is logged server-side, never sent to the
// client outside debug mode.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal(err)
	}
	if e.Status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, e)
		if gin.Mode() != gin.ReleaseMode && e.cause != nil {
			c.AbortWithStatusJSON(e.Status, gin.H{
				"message": e.Message,
				"stack":   fmt.Sprintf("%v\n%s", e.cause, debug.Stack()),
			})
			return
		}
	}
	c.AbortWithStatusJSON(e.Status, e)
}
