package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "github.com/profandreluis/MCFACIL/internals/features/school/activities/dto"
	activityModel "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	classModel "github.com/profandreluis/MCFACIL/internals/features/school/classes/model"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/activities
func (h *ActivityController) CreateActivity(c *fiber.Ctx) error {
	var req activityDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()

	// max_score > 0 é imposto aqui (tag gt=0): rejeitar na criação é a
	// política escolhida: o agregador não deve encontrar divisor inválido
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	var cnt int64
	if err := h.DB.Model(&classModel.ClassModel{}).
		Where("id = ?", req.ClassID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar turma")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}

	mm := req.ToModel()
	if err := h.DB.Create(&mm).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar atividade")
	}

	return helper.JsonCreated(c, "Atividade criada", activityDTO.FromActivityModel(mm))
}

// UPDATE (parcial, tri-state)
// PUT /api/activities/:id
func (h *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req activityDTO.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if msg := req.Validate(); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mo activityModel.ActivityModel
		if err := tx.First(&mo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Atividade não encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar atividade")
		}

		req.Apply(&mo)

		patch := map[string]interface{}{
			"name":        mo.Name,
			"max_score":   mo.MaxScore,
			"weight":      mo.Weight,
			"order_index": mo.OrderIndex,
			"updated_at":  mo.UpdatedAt,
		}
		if err := tx.Model(&activityModel.ActivityModel{}).
			Where("id = ?", id).
			Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar atividade")
		}

		c.Locals("updated_activity", mo)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mo := c.Locals("updated_activity").(activityModel.ActivityModel)
	return helper.JsonUpdated(c, "Atividade atualizada", activityDTO.FromActivityModel(mo))
}

// DELETE (cascata: notas antes da atividade)
// DELETE /api/activities/:id
func (h *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mo activityModel.ActivityModel
		if err := tx.First(&mo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Atividade não encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar atividade")
		}

		if err := tx.Where("activity_id = ?", id).
			Delete(&gradeModel.GradeModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover notas da atividade")
		}
		if err := tx.Delete(&activityModel.ActivityModel{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover atividade")
		}

		c.Locals("deleted_activity", mo)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mo := c.Locals("deleted_activity").(activityModel.ActivityModel)
	return helper.JsonDeleted(c, "Atividade removida", activityDTO.FromActivityModel(mo))
}
