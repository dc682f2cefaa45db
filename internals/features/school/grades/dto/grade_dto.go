package dto

import (
	"time"

	"github.com/google/uuid"

	m "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

/* =========================================================
   UPSERT
   =========================================================

   score é obrigatório no payload mas aceita null explícito ("limpar a
   nota"). PatchField distingue os dois casos: ausente → 422, null →
   grava NULL. */

type UpsertGradeRequest struct {
	StudentID  uuid.UUID                  `json:"student_id" validate:"required"`
	ActivityID uuid.UUID                  `json:"activity_id" validate:"required"`
	Score      helper.PatchField[float64] `json:"score"`
}

func (r UpsertGradeRequest) Validate() string {
	if !r.Score.Present {
		return "score é obrigatório (envie null para limpar a nota)"
	}
	if r.Score.Value != nil && *r.Score.Value < 0 {
		return "score não pode ser negativo"
	}
	return ""
}

func (r UpsertGradeRequest) ToModel() m.GradeModel {
	mm := m.GradeModel{
		StudentID:  r.StudentID,
		ActivityID: r.ActivityID,
	}
	if r.Score.Value != nil {
		v := *r.Score.Value
		mm.Score = &v
	}
	return mm
}

/* =========================================================
   RESPONSE
   ========================================================= */

type GradeResponse struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	ActivityID uuid.UUID `json:"activity_id"`
	Score      *float64  `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromGradeModel(mo m.GradeModel) GradeResponse {
	return GradeResponse{
		ID:         mo.ID,
		StudentID:  mo.StudentID,
		ActivityID: mo.ActivityID,
		Score:      mo.Score,
		CreatedAt:  mo.CreatedAt,
		UpdatedAt:  mo.UpdatedAt,
	}
}

func FromGradeModels(rows []m.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromGradeModel(rows[i]))
	}
	return out
}
