package handler

import (
	"errors"
	"net/http"

	"reprojection-api/internal/models"
	"reprojection-api/internal/tabular"
)

// failureStatus maps a conversion pipeline error to the HTTP status and
// client-safe message for it. Rejected input answers 400, coordinates the
// engine cannot project answer 422, anything unexpected answers 500.
func failureStatus(err error) (int, string) {
	var convErr *models.ConversionError
	if errors.As(err, &convErr) {
		if convErr.Kind == models.ProjectionFailure {
			return http.StatusUnprocessableEntity, convErr.Detail
		}
		return http.StatusBadRequest, convErr.Detail
	}

	var parseErr *tabular.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadRequest, parseErr.Detail
	}

	return http.StatusInternalServerError, "internal server error"
}

// failureKind extracts the machine-checkable failure kind, or "" when the
// error does not carry one.
func failureKind(err error) models.FailureKind {
	var convErr *models.ConversionError
	if errors.As(err, &convErr) {
		return convErr.Kind
	}
	return ""
}
