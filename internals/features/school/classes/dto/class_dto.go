package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	activityDTO "github.com/profandreluis/MCFACIL/internals/features/school/activities/dto"
	gradeDTO "github.com/profandreluis/MCFACIL/internals/features/school/grades/dto"
	m "github.com/profandreluis/MCFACIL/internals/features/school/classes/model"
	studentDTO "github.com/profandreluis/MCFACIL/internals/features/school/students/dto"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateClassRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=120"`
	SchoolYear *string `json:"school_year" validate:"omitempty,max=20"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.SchoolYear != nil {
		v := strings.TrimSpace(*r.SchoolYear)
		if v == "" {
			r.SchoolYear = nil
		} else {
			r.SchoolYear = &v
		}
	}
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{
		Name:       r.Name,
		SchoolYear: r.SchoolYear,
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type ClassResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SchoolYear *string   `json:"school_year"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromClassModel(mo m.ClassModel) ClassResponse {
	return ClassResponse{
		ID:         mo.ID,
		Name:       mo.Name,
		SchoolYear: mo.SchoolYear,
		CreatedAt:  mo.CreatedAt,
	}
}

func FromClassModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromClassModel(rows[i]))
	}
	return out
}

// Detalhe da turma: a turma + alunos + atividades + notas das atividades
// da turma, tudo em uma resposta (o grid de notas do front monta em cima
// disso).
type ClassDetailResponse struct {
	Class      ClassResponse                `json:"class"`
	Students   []studentDTO.StudentResponse `json:"students"`
	Activities []activityDTO.ActivityResponse `json:"activities"`
	Grades     []gradeDTO.GradeResponse     `json:"grades"`
}

// Fechamento ponderado por aluno (GET /api/classes/:id/summary).
type StudentScoreResponse struct {
	StudentID     uuid.UUID `json:"student_id"`
	Name          string    `json:"name"`
	Number        *int      `json:"number"`
	WeightedScore float64   `json:"weighted_score"`
}

type ClassSummaryResponse struct {
	Class    ClassResponse          `json:"class"`
	Students []StudentScoreResponse `json:"students"`
}
