package controller

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/profandreluis/MCFACIL/internals/configs"
	database "github.com/profandreluis/MCFACIL/internals/databases"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

type MigrateController struct {
	DB *gorm.DB
}

// Sem segredo configurado o endpoint fica permanentemente bloqueado.
func (h *MigrateController) authorized(c *fiber.Ctx) bool {
	secret := configs.MigrationSecret
	if secret == "" {
		return false
	}
	got := c.Get("x-migration-secret")
	return subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1
}

// POST /internal/migrate
// Derruba e recria todas as tabelas. Destrutivo.
func (h *MigrateController) Migrate(c *fiber.Ctx) error {
	if !h.authorized(c) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Segredo de migração ausente ou inválido")
	}
	log.Println("⚠️ /internal/migrate: recriando schema do zero")
	if err := database.ResetSchema(h.DB); err != nil {
		log.Printf("❌ migrate: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recriar o schema")
	}
	return helper.JsonOK(c, "Schema recriado", fiber.Map{"reset": true})
}

// POST /internal/migrate-safe
// Só inspeciona: relata tabelas/colunas faltantes sem tocar no banco.
func (h *MigrateController) MigrateSafe(c *fiber.Ctx) error {
	if !h.authorized(c) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Segredo de migração ausente ou inválido")
	}
	status := database.SchemaStatus(h.DB)
	return helper.JsonOK(c, "Status do schema", status)
}
