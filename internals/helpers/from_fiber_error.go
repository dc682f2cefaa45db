package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte o erro vindo de um DB.Transaction (normalmente
// *fiber.Error) no JSON padrão via JsonError. Qualquer outro erro vira 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
