package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/emberdate/onboarding-api/internal/analysis"
	"github.com/emberdate/onboarding-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrEmptyUserID),
		errors.Is(err, domain.ErrEmptyQuestion),
		errors.Is(err, domain.ErrEmptyAnswer):
		return http.StatusBadRequest

	// Analysis failures are server-side: the caller's input was valid,
	// the backend or its replies were not.
	case errors.Is(err, analysis.ErrAnalysisFailed),
		errors.Is(err, analysis.ErrIncompleteResult):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid request format"

	case errors.Is(err, domain.ErrEmptyUserID):
		return "Invalid user_id: required field"

	case errors.Is(err, domain.ErrEmptyQuestion):
		return "Invalid question: required field"

	case errors.Is(err, domain.ErrEmptyAnswer):
		return "Invalid answer: required field"

	case errors.Is(err, analysis.ErrIncompleteResult):
		return "Analysis produced an incomplete result"

	case errors.Is(err, analysis.ErrAnalysisFailed):
		return "Analysis failed"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'AnalyzeRequest.UserID' Error:Field validation
	// for 'UserID' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error
// messages.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
