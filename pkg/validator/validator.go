package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Validate valida los tags `validate` de un struct (request DTOs).
func Validate(s any) error {
	return v.Struct(s)
}

// IsValidationError indica si el error proviene de la validación de un struct.
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

// Message reduce un error de validación a un mensaje legible para el cliente:
// una línea por campo, unidas con "; ".
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(fe.Field()), fieldMessage(fe)))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un UUID válido"
	case "min":
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de [%s]", fe.Param())
	default:
		return "es inválido"
	}
}
