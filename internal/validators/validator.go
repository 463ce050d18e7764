// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator instance. Reported field names
// are taken from the json tag.
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// FieldError describes one rejected field.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Message() string {
	switch e.Tag {
	case "required":
		return "is required"
	case "required_if":
		return "is required for active records"
	case "max":
		return "must be at most " + e.Param + " characters"
	case "gt":
		return "must be greater than " + e.Param
	case "numeric":
		return "must contain digits only"
	default:
		return "is invalid (" + e.Tag + ")"
	}
}

// ValidationError is returned by [PayloadValidator.Validate]. It matches
// [ErrInvalidPayload] with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidPayload, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// FieldErrors returns field name to message pairs for err, or nil when err
// is not a [*ValidationError].
func FieldErrors(err error) map[string]string {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return nil
	}

	out := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		out[f.Field] = f.Message()
	}
	return out
}

// PayloadValidator validates client and group payloads.
type PayloadValidator struct {
	validate *validator.Validate
}

func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{validate: GetValidator()}
}

// Validate implements [Validator]. When fields are given only those (JSON
// names) are checked.
func (v *PayloadValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value.(type) {
	case models.ClientPayload, *models.ClientPayload, models.GroupPayload, *models.GroupPayload:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, structFieldNames(value, fields)...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}

	return convert(err)
}

// structFieldNames maps JSON names to Go field names, which is what
// StructPartial expects.
func structFieldNames(value any, jsonNames []string) []string {
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make([]string, 0, len(jsonNames))
	for _, name := range jsonNames {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if tag == name {
				out = append(out, f.Name)
				break
			}
		}
	}
	return out
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}
