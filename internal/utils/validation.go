package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/transfeera/receiver-api/internal/models"
)

// RegisterValidators installs the receiver rules on gin's binding engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterValidations(v)
}

// RegisterValidations adds the cpf_cnpj and upper_email tags, the PixData
// struct-level rule and json field naming to a validator. patch_email is
// upper_email under the name the patch messages are keyed on.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("cpf_cnpj", func(fl validator.FieldLevel) bool {
		return IsCPFOrCNPJ(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register cpf_cnpj validation: %w", err)
	}

	if err := v.RegisterValidation("upper_email", func(fl validator.FieldLevel) bool {
		return UppercaseEmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register upper_email validation: %w", err)
	}
	v.RegisterAlias("patch_email", "upper_email")

	v.RegisterStructValidation(validatePixData, models.PixData{})
	return nil
}

// validatePixData reads both sibling fields so the key is checked against its type.
// The type is passed as the error param for message building.
func validatePixData(sl validator.StructLevel) {
	data, ok := sl.Current().Interface().(models.PixData)
	if !ok {
		return
	}
	if valid, _ := ValidatePixKey(data.PixKeyType, data.PixKey); !valid {
		sl.ReportError(data.PixKey, "pix_key", "PixKey", "pix_key", string(data.PixKeyType))
	}
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// FormatValidationErrors turns a binding error into per-field messages
func FormatValidationErrors(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			messages = append(messages, fieldErrorMessage(fe))
		}
		return messages
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []string{fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String())}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return []string{fmt.Sprintf("%q is not a valid integer", numErr.Num)}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []string{"request body is not valid JSON"}
	}

	if errors.Is(err, io.EOF) {
		return []string{"request body is required"}
	}

	return []string{err.Error()}
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", field)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s should not be empty", field)
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("%s must contain at least %s elements", field, fe.Param())
		default:
			return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", field)
	case "unique":
		return fmt.Sprintf("All %s's elements must be unique", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s",
			field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "upper_email":
		return fmt.Sprintf("%s: Invalid email. Use format: JHON_DOE@EXAMPLE.COM", field)
	case "patch_email":
		return fmt.Sprintf("%s: Invalid email. Format: 'A@B.COM'", field)
	case "cpf_cnpj":
		return fmt.Sprintf("%s: Invalid CPF or CNPJ. Use the formats: XXX.XXX.XXX-XX or XX.XXX.XXX/XXXX-XX", field)
	case "pix_key":
		return PixKeyMessage(field, models.PixKeyType(fe.Param()))
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}
