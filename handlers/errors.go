package handlers

import (
	"CarePulse/forms"
	"CarePulse/middlewares"
	"CarePulse/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const genericErrorMessage = "Something went wrong. Please try again."

// statusFor maps service and form errors onto HTTP status codes.
func statusFor(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, forms.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, forms.ErrMissingPatient),
		errors.Is(err, forms.ErrMissingAppointment),
		errors.Is(err, forms.ErrUnknownMode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor is the text shown to the user. Internal errors are not echoed.
func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return genericErrorMessage
	}
	return err.Error()
}

// fieldErrors flattens validation errors into field -> message.
func fieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for field, fieldErr := range verrs {
		fields[field] = fieldErr.Error()
	}
	return fields
}

// respondError writes the JSON error body used by the /api routes.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if fields := fieldErrors(err); fields != nil {
		middlewares.HttpValidationError(c, status, fields)
		return
	}
	middlewares.HttpError(c, messageFor(err), status, err)
}

// renderError renders the error page.
func renderError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.HTML(status, "error", errorView{
		page:    page{Title: http.StatusText(status)},
		Status:  status,
		Message: messageFor(err),
	})
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// navigate sends the browser to location, through HX-Redirect for htmx requests.
func navigate(c *gin.Context) func(string) {
	return func(location string) {
		if isHTMX(c) {
			c.Header("HX-Redirect", location)
			c.Status(http.StatusOK)
			return
		}
		c.Redirect(http.StatusSeeOther, location)
	}
}
