package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherDTO "github.com/profandreluis/MCFACIL/internals/features/school/teachers/dto"
	teacherModel "github.com/profandreluis/MCFACIL/internals/features/school/teachers/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
)

type TeacherController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

// LIST
// GET /api/teachers?page=&per_page=
func (h *TeacherController) ListTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := h.DB.Model(&teacherModel.TeacherModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar professores")
	}

	var rows []teacherModel.TeacherModel
	if err := tx.
		Order("name").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar professores")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Professores listados", teacherDTO.FromTeacherModels(rows), &p)
}

// CREATE
// POST /api/teachers
func (h *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()

	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	mm := req.ToModel()
	if err := h.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar professor")
	}

	return helper.JsonCreated(c, "Professor criado", teacherDTO.FromTeacherModel(mm))
}

// UPDATE (parcial, tri-state)
// PUT /api/teachers/:id
func (h *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if msg := req.Validate(); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mo teacherModel.TeacherModel
		if err := tx.First(&mo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Professor não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar professor")
		}

		req.Apply(&mo)

		patch := map[string]interface{}{
			"name":         mo.Name,
			"email":        mo.Email,
			"phone":        mo.Phone,
			"subjects":     mo.Subjects,
			"yearly_goals": mo.YearlyGoals,
			"updated_at":   mo.UpdatedAt,
		}
		if err := tx.Model(&teacherModel.TeacherModel{}).
			Where("id = ?", id).
			Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar professor")
		}

		c.Locals("updated_teacher", mo)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mo := c.Locals("updated_teacher").(teacherModel.TeacherModel)
	return helper.JsonUpdated(c, "Professor atualizado", teacherDTO.FromTeacherModel(mo))
}

// DELETE
// DELETE /api/teachers/:id
func (h *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var mo teacherModel.TeacherModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar professor")
	}

	if err := h.DB.Delete(&teacherModel.TeacherModel{}, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover professor")
	}

	return helper.JsonDeleted(c, "Professor removido", teacherDTO.FromTeacherModel(mo))
}

// UPLOAD DE FOTO
// POST /api/teachers/:id/photo  (multipart, campo "photo")
func (h *TeacherController) UploadTeacherPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if h.OSS == nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Blob store não configurado")
	}

	var mo teacherModel.TeacherModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar professor")
	}

	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum arquivo enviado")
	}

	key, publicURL, err := h.OSS.UploadProfilePhoto(c.UserContext(), "teachers", id.String(), fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Model(&teacherModel.TeacherModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"profile_photo_url": publicURL,
			"updated_at":        time.Now(),
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Foto gravada (%s) mas o cadastro não foi atualizado; tente novamente", key))
	}

	return helper.JsonOK(c, "Foto atualizada", fiber.Map{"url": publicURL})
}
