package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityctrl "github.com/profandreluis/MCFACIL/internals/features/school/activities/controller"
)

func ActivityRoutes(api fiber.Router, db *gorm.DB) {
	handler := &activityctrl.ActivityController{DB: db}

	activities := api.Group("/activities")
	{
		activities.Post("/", handler.CreateActivity)
		activities.Put("/:id", handler.UpdateActivity)
		activities.Delete("/:id", handler.DeleteActivity)
	}
}
