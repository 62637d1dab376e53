// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-blog/models"
)

const (
	tagAtLeastOne = "atleastone"
	tagBcryptLen  = "bcryptlen"

	// bcryptMaxBytes is the longest password bcrypt hashes.
	bcryptMaxBytes = 72
)

// fieldReasons maps json field names of request bodies to reason codes.
var fieldReasons = map[string]error{
	"name":     ErrInvalidName,
	"email":    ErrInvalidEmail,
	"password": ErrInvalidPassword,
	"type":     ErrInvalidUserType,
	"title":    ErrInvalidTitle,
	"content":  ErrInvalidContent,
	"isHidden": ErrInvalidVisibility,
}

// RequestValidator checks request bodies against their `validate` struct
// tags. Field errors are reported under json field names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateUpdatePostRequest, models.UpdatePostRequest{})
	_ = v.RegisterValidation(tagBcryptLen, validateBcryptLen)

	return &RequestValidator{validate: v}
}

// Validate validates obj, which must be a struct or a pointer to one. When
// fields are given, only errors of these json fields are reported.
// The first failing field decides the returned reason code.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalidValidationErr *validator.InvalidValidationError
	if errors.As(err, &invalidValidationErr) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, fieldErr := range validationErrs {
		if len(fields) > 0 && !slices.Contains(fields, fieldErr.Field()) {
			continue
		}
		return fmt.Errorf("%w: %s", reasonFor(fieldErr), fieldErr.Error())
	}

	return nil
}

func reasonFor(fieldErr validator.FieldError) error {
	if fieldErr.Tag() == tagAtLeastOne {
		return ErrNoFieldsToUpdate
	}
	if reason, ok := fieldReasons[fieldErr.Field()]; ok {
		return reason
	}
	return ErrInvalidField
}

func validateUpdatePostRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.UpdatePostRequest)
	if req.Title == nil && req.Content == nil {
		sl.ReportError(req.Title, "title", "Title", tagAtLeastOne, "")
	}
}

// validateBcryptLen limits the byte length, not the rune count, of a password.
func validateBcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= bcryptMaxBytes
}
