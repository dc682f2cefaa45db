package model

import (
	"time"

	"github.com/google/uuid"
)

// Nota de um aluno em uma atividade. No máximo UMA linha por par
// (student_id, activity_id), garantido pelo índice único composto, que é
// também o alvo do ON CONFLICT do upsert.
// score NULL = "ainda não avaliado" (diferente de nota zero).
type GradeModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"column:student_id;type:uuid;not null;uniqueIndex:uq_grades_student_activity" json:"student_id"`
	ActivityID uuid.UUID `gorm:"column:activity_id;type:uuid;not null;uniqueIndex:uq_grades_student_activity;index" json:"activity_id"`

	Score *float64 `gorm:"column:score" json:"score"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
