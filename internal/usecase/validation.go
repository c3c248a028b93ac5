package usecase

import (
	"errors"
	"sort"
	"strings"

	"clinic-booking/pkg/validator"
)

var ErrValidation = errors.New("validation failed")

// ValidationError lists the offending fields of a request. It is returned
// before any call to the backend is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func validate(v *validator.CustomValidator, req interface{}) error {
	if err := v.Validate(req); err != nil {
		fields := v.FormatValidationErrors(err)
		if len(fields) == 0 {
			return err
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}
