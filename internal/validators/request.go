// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-board/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates the auth request models.
type RequestValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewRequestValidator builds a [RequestValidator] whose field errors are
// reported under their JSON names.
func NewRequestValidator() Validator {
	return newRequestValidator(time.Now)
}

func newRequestValidator(now func() time.Time) *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// bcrypt truncates input beyond 72 bytes, "max" counts runes
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return &RequestValidator{validate: v, now: now}
}

// Validate runs the struct tag rules on obj (all of them, or only fields
// when given) and then the type-specific rules.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return &ValidationError{Errors: validationErrors}
		}
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	switch value := obj.(type) {
	case models.CandidateRegistrationRequest:
		return v.validateBirthDate(value.BirthDate)
	case *models.CandidateRegistrationRequest:
		return v.validateBirthDate(value.BirthDate)
	case models.CandidateProfileRequest:
		return v.validateBirthDate(value.BirthDate)
	case *models.CandidateProfileRequest:
		return v.validateBirthDate(value.BirthDate)
	}
	return nil
}

func (v *RequestValidator) validateBirthDate(date models.Date) error {
	if date.IsZero() {
		return nil
	}
	if date.After(v.now()) {
		return ErrBirthDateInFuture
	}
	return nil
}
