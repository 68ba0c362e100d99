package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"reserve/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	validate      = newValidate()
	tenantPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{0,31}$`)
)

// Enum is implemented by the string enums of the booking domain (origins, services, events).
type Enum interface {
	Valid() bool
}

func validEnum(field val.FieldLevel) bool {
	if enum, ok := field.Field().Interface().(Enum); ok {
		return enum.Valid()
	}

	if field.Field().CanAddr() {
		if enum, ok := field.Field().Addr().Interface().(Enum); ok {
			return enum.Valid()
		}
	}

	return false
}

func validTenant(field val.FieldLevel) bool {
	return field.Field().Kind() == reflect.String && tenantPattern.MatchString(field.Field().String())
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for tag, fn := range map[string]val.Func{"valid": validEnum, "tenant": validTenant} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", tag, err))
		}
	}

	return v
}

// Validate decodes a JSON body into data and validates it. Every failure is a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
