package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// Errors is the ordered list of human-readable violations of one object.
type Errors []string

// HasErrors reports whether any violation was found.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// Validator checks DTO field constraints declared in `validate` struct tags.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

var defaultValidator = New()

// Struct validates obj with the package default validator.
func Struct(obj interface{}) Errors {
	return defaultValidator.Struct(obj)
}

// New creates a validator with the registrar tags registered.
func New() *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: time.Now}

	// Report fields by their JSON names
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Zero dates count as absent
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch d := field.Interface().(type) {
		case helpers.Date:
			if d.IsZero() {
				return nil
			}
			return d.Time()
		case helpers.DateTime:
			if d.IsZero() {
				return nil
			}
			return d.Time()
		}
		return nil
	}, helpers.Date{}, helpers.DateTime{})

	_ = v.validate.RegisterValidation("past", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.Before(v.now())
	})
	_ = v.validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.After(v.now())
	})

	for tag, rule := range CompiledPatterns {
		pattern := rule.Pattern
		_ = v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
	}

	return v
}

// Struct returns every violation of obj in field declaration order.
func (v *Validator) Struct(obj interface{}) Errors {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{err.Error()}
	}

	errs := make(Errors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		errs = append(errs, formatValidationError(fe))
	}
	return errs
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		if e.Kind() == reflect.String {
			return e.Field() + " cannot be empty"
		}
		return e.Field() + " cannot be null"
	case "max":
		return e.Field() + " cannot be longer than " + e.Param() + " characters"
	case "past":
		return e.Field() + " cannot be in the future"
	case "future":
		return e.Field() + " cannot be in the past"
	}

	if rule, ok := CompiledPatterns[e.Tag()]; ok {
		return e.Field() + " can contain only " + rule.Description
	}
	return e.Field() + " validation failed: " + e.Tag()
}
