package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	//nolint:errcheck // Tag name is static and valid
	v.RegisterValidation("pow2", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n > 0 && n&(n-1) == 0
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks cfg against its field rules and reports every violation.
func Validate(cfg T2048Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.TrimPrefix(fe.Namespace(), "T2048Config.")
		switch fe.Tag() {
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", field, fe.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", field, fe.Param())
		case "pow2":
			fmt.Fprintf(&details, "%s must be a power of two", field)
		default:
			fmt.Fprintf(&details, "%s failed %s validation", field, fe.Tag())
		}
	}
	return fmt.Errorf("invalid configuration: %s", details.String())
}
