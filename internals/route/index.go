package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "github.com/profandreluis/MCFACIL/internals/features/admin/route"
	fileRoute "github.com/profandreluis/MCFACIL/internals/features/files/route"
	activityRoute "github.com/profandreluis/MCFACIL/internals/features/school/activities/route"
	classRoute "github.com/profandreluis/MCFACIL/internals/features/school/classes/route"
	gradeRoute "github.com/profandreluis/MCFACIL/internals/features/school/grades/route"
	studentRoute "github.com/profandreluis/MCFACIL/internals/features/school/students/route"
	teacherRoute "github.com/profandreluis/MCFACIL/internals/features/school/teachers/route"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, ossSvc *ossHelper.OSSService) {
	api := app.Group("/api")

	log.Println("[INFO] Montando rotas de turmas...")
	classRoute.ClassRoutes(api, db)

	log.Println("[INFO] Montando rotas de alunos...")
	studentRoute.StudentRoutes(api, db, ossSvc)

	log.Println("[INFO] Montando rotas de atividades...")
	activityRoute.ActivityRoutes(api, db)

	log.Println("[INFO] Montando rotas de notas...")
	gradeRoute.GradeRoutes(api, db)

	log.Println("[INFO] Montando rotas de professores...")
	teacherRoute.TeacherRoutes(api, db, ossSvc)

	log.Println("[INFO] Montando rotas de arquivos...")
	fileRoute.FileRoutes(api, ossSvc)

	log.Println("[INFO] Montando rotas internas de migração...")
	adminRoute.MigrateRoutes(app, db)
}
