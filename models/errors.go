package models

import (
	"errors"
	"fmt"
)

var (
	ErrShopcartNotFound = errors.New("shopcart not found")
	ErrItemNotFound     = errors.New("item not found")
)

// DataValidationError reports a request body that could not populate a record.
// Field is empty when the body as a whole was malformed.
type DataValidationError struct {
	Field  string
	Reason string
}

func (e *DataValidationError) Error() string {
	return e.Reason
}

func missingField(entity, field string) *DataValidationError {
	return &DataValidationError{
		Field:  field,
		Reason: fmt.Sprintf("Invalid %s: missing %s", entity, field),
	}
}

func badValue(field string, err error) *DataValidationError {
	return &DataValidationError{
		Field:  field,
		Reason: fmt.Sprintf("Invalid data type: %s: %v", field, err),
	}
}

func badAttribute(field string, err error) *DataValidationError {
	return &DataValidationError{
		Field:  field,
		Reason: fmt.Sprintf("Invalid attribute: %s: %v", field, err),
	}
}

// BadBody builds the error returned when a request body is not a JSON object.
func BadBody(entity string, err error) *DataValidationError {
	reason := fmt.Sprintf("Invalid %s: body of request contained bad or no data", entity)
	if err != nil {
		reason += " " + err.Error()
	}
	return &DataValidationError{Reason: reason}
}

// IsValidationError reports whether err is, or wraps, a DataValidationError.
func IsValidationError(err error) bool {
	var validationErr *DataValidationError
	return errors.As(err, &validationErr)
}
