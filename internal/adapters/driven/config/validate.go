package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check validates v and reports every failing field as one ErrConfig.
// names maps struct field names to the names users configure.
func check(v any, names map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if n, ok := names[name]; ok {
			name = n
		}
		msgs = append(msgs, describe(name, fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrConfig, strings.Join(msgs, "; "))
}

func describe(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "url":
		return name + " must be a URL"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s fails %s", name, fe.Tag())
	}
}
