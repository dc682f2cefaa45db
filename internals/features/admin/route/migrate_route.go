package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminctrl "github.com/profandreluis/MCFACIL/internals/features/admin/controller"
)

// Rotas internas de operação. Ficam fora do prefixo /api e exigem o
// header x-migration-secret.
func MigrateRoutes(app *fiber.App, db *gorm.DB) {
	handler := &adminctrl.MigrateController{DB: db}

	internal := app.Group("/internal")
	{
		internal.Post("/migrate", handler.Migrate)
		internal.Post("/migrate-safe", handler.MigrateSafe)
	}
}
