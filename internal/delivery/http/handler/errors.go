package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
)

// decodeJSON reads the request body into v, answering 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// writeValidationError answers 400 with the field messages when err is a
// usecase validation error.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(w, verr.Fields)
		return true
	}
	return false
}
