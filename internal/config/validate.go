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

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validate reports every invalid option.
func (s *Settings) Validate() error {
	var errs []error

	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, e := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s %s", e.Field(), friendlyMessage(e)))
		}
	}

	if s.CopyToComment && strings.TrimSpace(s.CommentTag) == "" {
		errs = append(errs, errors.New("comment_tag must not be empty"))
	}

	return errors.Join(errs...)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required_without":
		return "is required without offline_dir"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s, got %v", e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s, got %q", e.Param(), e.Value())
	default:
		return fmt.Sprintf("failed on %s", e.Tag())
	}
}
