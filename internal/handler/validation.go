package handler

import (
	"encoding/json"
	"unicode/utf8"
)

const MaxTitleLength = 255

// FieldError описывает ошибку валидации отдельного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateCreate checks a candidate task for creation. Title is required,
// description and completed are optional.
func validateCreate(req TaskRequest) []FieldError {
	var errs []FieldError

	if req.Title == nil || *req.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	} else if utf8.RuneCountInString(*req.Title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be at most 255 characters"})
	}

	return errs
}

// validatePatch checks a partial update. Every field is optional; supplied
// fields follow the same rules as creation.
func validatePatch(req TaskRequest) []FieldError {
	var errs []FieldError

	if req.Title != nil {
		if *req.Title == "" {
			errs = append(errs, FieldError{Field: "title", Message: "Title must not be empty"})
		} else if utf8.RuneCountInString(*req.Title) > MaxTitleLength {
			errs = append(errs, FieldError{Field: "title", Message: "Title must be at most 255 characters"})
		}
	}

	return errs
}

// typeFieldError converts a JSON type mismatch (e.g. completed sent as a
// string) into a field-level validation error.
func typeFieldError(typeErr *json.UnmarshalTypeError) FieldError {
	return FieldError{
		Field:   typeErr.Field,
		Message: "Must be of type " + typeErr.Type.String(),
	}
}
