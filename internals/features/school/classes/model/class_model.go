package model

import (
	"time"

	"github.com/google/uuid"
)

// Turma. Criada explicitamente; alunos e atividades apontam para ela via
// class_id. Não há updated_at: o cadastro da turma não é editado depois.
type ClassModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	SchoolYear *string   `gorm:"column:school_year;type:varchar(20)" json:"school_year"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (ClassModel) TableName() string { return "classes" }
