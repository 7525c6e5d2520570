package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó validación.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

// ValidateStruct valida un DTO por sus tags `validate` y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []FieldError {
	var errs []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return errs
}

// Describe arma un mensaje legible a partir de los errores de campo.
func Describe(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Tag+")")
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}
