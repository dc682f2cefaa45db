package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherctrl "github.com/profandreluis/MCFACIL/internals/features/school/teachers/controller"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
	"github.com/profandreluis/MCFACIL/internals/middlewares"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB, ossSvc *ossHelper.OSSService) {
	handler := &teacherctrl.TeacherController{DB: db, OSS: ossSvc}

	teachers := api.Group("/teachers")
	{
		teachers.Get("/", handler.ListTeachers)
		teachers.Post("/", handler.CreateTeacher)
		teachers.Put("/:id", handler.UpdateTeacher)
		teachers.Delete("/:id", handler.DeleteTeacher)
		teachers.Post("/:id/photo", middlewares.UploadRateLimiter(), handler.UploadTeacherPhoto)
	}
}
