package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "github.com/profandreluis/MCFACIL/internals/features/school/classes/controller"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	handler := &classctrl.ClassController{DB: db}

	classes := api.Group("/classes")
	{
		classes.Get("/", handler.ListClasses)
		classes.Post("/", handler.CreateClass)
		classes.Get("/:id", handler.GetClass)
		classes.Get("/:id/summary", handler.GetClassSummary)
	}
}
