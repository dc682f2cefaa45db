package model

import (
	"time"

	"github.com/google/uuid"
)

// Atividade avaliativa de uma turma (prova, trabalho...). max_score é o
// divisor da normalização da nota: precisa ser > 0, validado no DTO.
// weight costuma ficar em [0,1] mas não é imposto pelo servidor: a soma
// ponderada final é literal, sem renormalização.
type ActivityModel struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;not null;index" json:"class_id"`

	Name       string  `gorm:"column:name;type:varchar(160);not null" json:"name"`
	MaxScore   float64 `gorm:"column:max_score;not null" json:"max_score"`
	Weight     float64 `gorm:"column:weight;not null;default:1" json:"weight"`
	OrderIndex *int    `gorm:"column:order_index" json:"order_index"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (ActivityModel) TableName() string { return "activities" }
