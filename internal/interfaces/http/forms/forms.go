// Package forms validates the typed input structs bound by HTTP handlers and
// turns validator failures into per-field messages for re-rendered forms.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the key for errors that belong to the form as a whole.
const NonFieldErrors = "__all__"

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Result is the outcome of validating one input struct.
type Result struct {
	errors FieldErrors
}

// Invalid builds a failed result from already known field errors.
func Invalid(errs FieldErrors) Result {
	return Result{errors: errs}
}

func (r Result) Valid() bool {
	return len(r.errors) == 0
}

// Errors never returns nil so templates can index it directly.
func (r Result) Errors() FieldErrors {
	if r.errors == nil {
		return FieldErrors{}
	}
	return r.errors
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields under the names used in the HTML forms.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate checks input against its `validate` tags. Only the first failure
// of each field is kept.
func Validate(input any) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Invalid(FieldErrors{NonFieldErrors: "The submitted data is invalid."})
	}

	errs := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = fieldMessage(fe)
	}
	return Invalid(errs)
}

func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at most %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at least %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)
	case "oneof":
		return "Select a valid choice."
	case "datetime":
		return "Enter a valid date."
	case "eqfield":
		return "The two fields didn't match."
	default:
		return fmt.Sprintf("Failed on the '%s' check.", fe.Tag())
	}
}
