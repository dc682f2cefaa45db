package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "github.com/profandreluis/MCFACIL/internals/features/school/classes/model"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
	studentDTO "github.com/profandreluis/MCFACIL/internals/features/school/students/dto"
	studentModel "github.com/profandreluis/MCFACIL/internals/features/school/students/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
	ossHelper "github.com/profandreluis/MCFACIL/internals/helpers/oss"
)

type StudentController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

// CREATE
// POST /api/students
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()

	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	// a turma referenciada precisa existir ANTES de criar o filho
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar aluno")
	}

	return helper.JsonCreated(c, "Aluno criado", studentDTO.FromStudentModel(mm))
}

// UPDATE (parcial, tri-state)
// PUT /api/students/:id
func (h *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if msg := req.Validate(); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mo studentModel.StudentModel
		if err := tx.First(&mo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar aluno")
		}

		// só campos presentes sobrescrevem; updated_at é renovado sempre,
		// mesmo num update sem campo efetivo
		req.Apply(&mo)

		patch := map[string]interface{}{
			"name":                  mo.Name,
			"status":                mo.Status,
			"number":                mo.Number,
			"phone":                 mo.Phone,
			"profile_photo_url":     mo.ProfilePhotoURL,
			"life_project":          mo.LifeProject,
			"youth_club_semester_1": mo.YouthClubSemester1,
			"youth_club_semester_2": mo.YouthClubSemester2,
			"elective_semester_1":   mo.ElectiveSemester1,
			"elective_semester_2":   mo.ElectiveSemester2,
			"tutor_teacher":         mo.TutorTeacher,
			"guardian_1":            mo.Guardian1,
			"guardian_2":            mo.Guardian2,
			"updated_at":            mo.UpdatedAt,
		}
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("id = ?", id).
			Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar aluno")
		}

		c.Locals("updated_student", mo)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mo := c.Locals("updated_student").(studentModel.StudentModel)
	return helper.JsonUpdated(c, "Aluno atualizado", studentDTO.FromStudentModel(mo))
}

// DELETE (cascata: notas antes do aluno)
// DELETE /api/students/:id
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var mo studentModel.StudentModel
		if err := tx.First(&mo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar aluno")
		}

		// filhos antes do pai
		if err := tx.Where("student_id = ?", id).
			Delete(&gradeModel.GradeModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover notas do aluno")
		}
		if err := tx.Delete(&studentModel.StudentModel{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover aluno")
		}

		c.Locals("deleted_student", mo)
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	mo := c.Locals("deleted_student").(studentModel.StudentModel)
	return helper.JsonDeleted(c, "Aluno removido", studentDTO.FromStudentModel(mo))
}

// UPLOAD DE FOTO
// POST /api/students/:id/photo  (multipart, campo "photo")
func (h *StudentController) UploadStudentPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if h.OSS == nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Blob store não configurado")
	}

	var mo studentModel.StudentModel
	if err := h.DB.First(&mo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar aluno")
	}

	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum arquivo enviado")
	}

	// valida tipo/tamanho ANTES de qualquer escrita no blob store
	key, publicURL, err := h.OSS.UploadProfilePhoto(c.UserContext(), "students", id.String(), fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Model(&studentModel.StudentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"profile_photo_url": publicURL,
			"updated_at":        time.Now(),
		}).Error; err != nil {
		// blob já gravado e linha não aponta para ele: inconsistência
		// retryável, devolvida com contexto em vez de engolida
		return helper.JsonError(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Foto gravada (%s) mas o cadastro não foi atualizado; tente novamente", key))
	}

	return helper.JsonOK(c, "Foto atualizada", fiber.Map{"url": publicURL})
}
