package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "github.com/profandreluis/MCFACIL/internals/features/school/activities/dto"
	activityModel "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	classDTO "github.com/profandreluis/MCFACIL/internals/features/school/classes/dto"
	classModel "github.com/profandreluis/MCFACIL/internals/features/school/classes/model"
	gradeDTO "github.com/profandreluis/MCFACIL/internals/features/school/grades/dto"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
	gradeService "github.com/profandreluis/MCFACIL/internals/features/school/grades/service"
	studentDTO "github.com/profandreluis/MCFACIL/internals/features/school/students/dto"
	studentModel "github.com/profandreluis/MCFACIL/internals/features/school/students/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

// LIST
// GET /api/classes?page=&per_page=
func (h *ClassController) ListClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := h.DB.Model(&classModel.ClassModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar turmas")
	}

	var rows []classModel.ClassModel
	if err := tx.
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar turmas")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Turmas listadas", classDTO.FromClassModels(rows), &p)
}

// fetchClassDetail monta turma + alunos + atividades + notas. Usado pelo
// detalhe e pelo fechamento.
func (h *ClassController) fetchClassDetail(classID uuid.UUID) (
	classModel.ClassModel,
	[]studentModel.StudentModel,
	[]activityModel.ActivityModel,
	[]gradeModel.GradeModel,
	error,
) {
	var cls classModel.ClassModel
	var students []studentModel.StudentModel
	var activities []activityModel.ActivityModel
	var grades []gradeModel.GradeModel

	if err := h.DB.First(&cls, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cls, nil, nil, nil, fiber.NewError(fiber.StatusNotFound, "Turma não encontrada")
		}
		return cls, nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar turma")
	}

	if err := h.DB.
		Where("class_id = ?", classID).
		Order("number, name").
		Find(&students).Error; err != nil {
		return cls, nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar alunos")
	}

	if err := h.DB.
		Where("class_id = ?", classID).
		Order("order_index, name").
		Find(&activities).Error; err != nil {
		return cls, nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar atividades")
	}

	// notas de todas as atividades DA TURMA (não só dos alunos atuais)
	sub := h.DB.Model(&activityModel.ActivityModel{}).
		Select("id").
		Where("class_id = ?", classID)
	if err := h.DB.
		Where("activity_id IN (?)", sub).
		Find(&grades).Error; err != nil {
		return cls, nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar notas")
	}

	return cls, students, activities, grades, nil
}

// GET BY ID (detalhe completo)
// GET /api/classes/:id
func (h *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	cls, students, activities, grades, err := h.fetchClassDetail(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Detalhe da turma", classDTO.ClassDetailResponse{
		Class:      classDTO.FromClassModel(cls),
		Students:   studentDTO.FromStudentModels(students),
		Activities: activityDTO.FromActivityModels(activities),
		Grades:     gradeDTO.FromGradeModels(grades),
	})
}

// SUMMARY (fechamento ponderado por aluno)
// GET /api/classes/:id/summary
func (h *ClassController) GetClassSummary(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	cls, students, activities, grades, err := h.fetchClassDetail(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	scores := make([]classDTO.StudentScoreResponse, 0, len(students))
	for i := range students {
		idx := gradeService.BuildGradeIndex(students[i].ID, grades)
		scores = append(scores, classDTO.StudentScoreResponse{
			StudentID:     students[i].ID,
			Name:          students[i].Name,
			Number:        students[i].Number,
			WeightedScore: gradeService.WeightedFinalScore(activities, idx),
		})
	}

	return helper.JsonOK(c, "Fechamento da turma", classDTO.ClassSummaryResponse{
		Class:    classDTO.FromClassModel(cls),
		Students: scores,
	})
}

// CREATE
// POST /api/classes
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()

	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrors(err))
	}

	mm := req.ToModel()
	if err := h.DB.Create(&mm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar turma")
	}

	return helper.JsonCreated(c, "Turma criada", classDTO.FromClassModel(mm))
}
