package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradectrl "github.com/profandreluis/MCFACIL/internals/features/school/grades/controller"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	handler := &gradectrl.GradeController{DB: db}

	grades := api.Group("/grades")
	{
		// upsert atômico: cria ou atualiza a nota do par aluno+atividade
		grades.Post("/", handler.UpsertGrade)
	}
}
