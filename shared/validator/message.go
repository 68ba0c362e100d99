package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gtfield":  "{field} must be after {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"email":    "{field} must be a valid email address",
	"valid":    "{field} has an unsupported value",
	"tenant":   "{field} must be a lowercase tenant identifier",
}

// describe renders one violation. Namespaced fields keep their path, e.g. servicesRequested[setup].
func describe(fieldErr val.FieldError) string {
	field := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	if field == "" {
		field = "value"
	}

	template, ok := messages[fieldErr.Tag()]
	if !ok {
		return field + " failed the " + fieldErr.Tag() + " check"
	}

	return strings.NewReplacer("{field}", field, "{param}", fieldErr.Param()).Replace(template)
}

// message joins every violation so clients can fix a request in one round trip.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		parts = append(parts, describe(fieldErr))
	}

	return strings.Join(parts, "; ")
}
