// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package validation checks request payloads and reports the first failure
// as an apperrors.ValidationError.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
)

var (
	// DNS label, at least 3 characters, no leading or trailing hyphen.
	subdomainRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
	moduleRegex    = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	currencyRegex  = regexp.MustCompile(`^[A-Z]{3}$`)
)

type Validator struct {
	validate *validator.Validate
}

// Struct validates v against its validate tags.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return apperrors.NewValidationError("", "%v", err)
	}

	fe := fieldErrors[0]
	return apperrors.NewValidationError(fieldName(fe), "%s", message(fe))
}

// Subdomain reports whether s is an acceptable tenant subdomain.
func Subdomain(s string) bool {
	return subdomainRegex.MatchString(s)
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "subdomain":
		return "must be a lowercase DNS label of 3 to 63 characters"
	case "module":
		return "must be a lowercase module technical name"
	case "currency":
		return "must be an ISO 4217 code"
	case "uuid":
		return "must be a UUID"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

func NewValidator() *Validator {
	v := new(Validator)

	v.validate = validator.New(validator.WithRequiredStructEnabled())
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.validate.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return Subdomain(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("module", func(fl validator.FieldLevel) bool {
		return moduleRegex.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return currencyRegex.MatchString(fl.Field().String())
	})

	return v
}
