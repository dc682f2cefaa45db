package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Professor. Independente de turma/aluno.
// subjects e yearly_goals são sequências serializadas como JSON no banco;
// o encode/decode fica isolado no DTO (conteúdo malformado vira lista
// vazia na leitura, nunca erro).
type TeacherModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name            string  `gorm:"column:name;type:varchar(160);not null;index" json:"name"`
	Email           *string `gorm:"column:email;type:varchar(160)" json:"email"`
	Phone           *string `gorm:"column:phone;type:varchar(40)" json:"phone"`
	ProfilePhotoURL *string `gorm:"column:profile_photo_url;type:text" json:"profile_photo_url"`

	Subjects    datatypes.JSON `gorm:"column:subjects" json:"subjects"`
	YearlyGoals datatypes.JSON `gorm:"column:yearly_goals" json:"yearly_goals"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
