package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "github.com/profandreluis/MCFACIL/internals/middlewares/logger"
)

// SetupMiddlewares amarra os middlewares comuns do app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
