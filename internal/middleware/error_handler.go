package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"user-management-backend/pkg/apperror"
	"user-management-backend/pkg/response"
)

// Labels for the bad-request sub-buckets. 403/404/409/500 use the standard
// reason phrases.
const (
	LabelInvalidPayload   = "Invalid Payload"
	LabelInvalidParameter = "Invalid Parameter"
	LabelInvalidData      = "Invalid Data"
)

// ErrorHandler translates errors attached by handlers (via c.Error) into the
// uniform JSON error body. It must be registered before any route handler.
func (m Middleware) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		er := Translate(err, c.Request.URL.Path)
		ctx := c.Request.Context()
		if er.Status >= http.StatusInternalServerError {
			m.l.Errorf(ctx, "request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		} else {
			m.l.Warnf(ctx, "request rejected: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		// A handler that already produced a body wins; nothing to translate.
		if c.Writer.Written() {
			return
		}
		response.WriteError(c, er)
	}
}

// Translate classifies err into one of the five response buckets
// (validation/bad-request, forbidden, not-found, conflict, internal) and
// builds the error body for it.
func Translate(err error, path string) response.ErrorResponse {
	if err == nil {
		return response.NewError(http.StatusInternalServerError, path,
			http.StatusText(http.StatusInternalServerError), "")
	}

	// Typed application errors carry their own status and label.
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return response.NewError(appErr.Status, path, appErr.Label, appErr.Message)
	}

	// Binding validation failures on the request body.
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return response.NewError(http.StatusBadRequest, path,
			LabelInvalidPayload, validationMessage(vErrs, err))
	}

	// Malformed JSON bodies.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg := fmt.Sprintf("%s must be of type %s", fieldOrBody(typeErr.Field), typeErr.Type)
		return response.NewError(http.StatusBadRequest, path, LabelInvalidData, msg)
	}
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		return response.NewError(http.StatusBadRequest, path,
			LabelInvalidData, "request body is not valid JSON")
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return response.NewError(http.StatusBadRequest, path,
			LabelInvalidData, "request body is empty or truncated")
	}

	// Unparsable query/path parameters (gin form binding surfaces strconv errors).
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		msg := fmt.Sprintf("%q is not a valid number", numErr.Num)
		return response.NewError(http.StatusBadRequest, path, LabelInvalidParameter, msg)
	}

	// Everything else is terminal and unexpected.
	return response.NewError(http.StatusInternalServerError, path,
		http.StatusText(http.StatusInternalServerError), err.Error())
}

// validationMessage assembles a human-readable message from field errors,
// falling back to the raw error text when there is nothing to extract.
func validationMessage(vErrs validator.ValidationErrors, raw error) string {
	if len(vErrs) == 0 {
		return raw.Error()
	}
	parts := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		parts = append(parts, strings.ToLower(fe.Field())+" "+fieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "e164":
		return "must be a valid phone number"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

func fieldOrBody(field string) string {
	if field == "" {
		return "request body"
	}
	return field
}
