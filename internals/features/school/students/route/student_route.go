package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentctrl "github.com/profandreluis/MCFACIL/internals/features/school/students/controller"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
	"github.com/profandreluis/MCFACIL/internals/middlewares"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, ossSvc *ossHelper.OSSService) {
	handler := &studentctrl.StudentController{DB: db, OSS: ossSvc}

	students := api.Group("/students")
	{
		students.Post("/", handler.CreateStudent)
		students.Put("/:id", handler.UpdateStudent)
		students.Delete("/:id", handler.DeleteStudent)
		students.Post("/:id/photo", middlewares.UploadRateLimiter(), handler.UploadStudentPhoto)
	}
}
