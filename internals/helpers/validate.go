package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate aplica as tags `validate:"..."` de um DTO.
func Validate(s any) error { return validate.Struct(s) }

// ValidatorErrors converte validator.ValidationErrors no mapa
// campo → mensagens usado por JsonValidationError.
func ValidatorErrors(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "campo obrigatório"
		case "gt":
			msg = "deve ser maior que " + fe.Param()
		case "gte":
			msg = "deve ser maior ou igual a " + fe.Param()
		case "lte":
			msg = "deve ser menor ou igual a " + fe.Param()
		case "oneof":
			msg = "valor deve ser um de: " + fe.Param()
		case "email":
			msg = "e-mail inválido"
		case "max":
			msg = "tamanho máximo: " + fe.Param()
		default:
			msg = "inválido (" + fe.Tag() + ")"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
