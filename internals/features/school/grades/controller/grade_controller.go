package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	gradeDTO "github.com/profandreluis/MCFACIL/internals/features/school/grades/dto"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
	studentModel "github.com/profandreluis/MCFACIL/internals/features/school/students/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

type GradeController struct {
	DB *gorm.DB
}

// UPSERT
// POST /api/grades
//
// Uma escrita condicional atômica: INSERT ... ON CONFLICT (student_id,
// activity_id) DO UPDATE, apoiada no índice único composto. Dois lançamentos
// concorrentes para o mesmo par nunca geram linha duplicada. Idempotente:
// repetir o mesmo payload mantém uma única linha com aquele score.
func (h *GradeController) UpsertGrade(c *fiber.Ctx) error {
	var req gradeDTO.UpsertGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}
	if msg := req.Validate(); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	// aluno e atividade precisam existir (sem caminho de criação órfã)
	var cnt int64
	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("id = ?", req.StudentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar aluno")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}
	if err := h.DB.Model(&activityModel.ActivityModel{}).
		Where("id = ?", req.ActivityID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar atividade")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Atividade não encontrada")
	}

	mm := req.ToModel()
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "activity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":      mm.Score,
				"updated_at": time.Now(),
			}),
		}).
		Create(&mm).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// só alcançável se o conflito estourar fora do índice do par
			return helper.JsonError(c, fiber.StatusConflict, "Conflito ao lançar nota")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao lançar nota")
	}

	// no caminho de conflito o Create não preenche a linha vigente:
	// recarrega pelo par para devolver id/timestamps canônicos
	var row gradeModel.GradeModel
	if err := h.DB.
		First(&row, "student_id = ? AND activity_id = ?", req.StudentID, req.ActivityID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar nota")
	}

	return helper.JsonOK(c, "Nota lançada", gradeDTO.FromGradeModel(row))
}
