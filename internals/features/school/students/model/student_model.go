package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAtivo   = "Ativo"
	StatusInativo = "Inativo"
)

// Aluno. Pertence a exatamente uma turma (class_id obrigatório na criação).
// Campos opcionais são ponteiros (NULL no banco).
type StudentModel struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;not null;index" json:"class_id"`

	Name   string `gorm:"column:name;type:varchar(160);not null" json:"name"`
	Status string `gorm:"column:status;type:varchar(10);not null;default:'Ativo'" json:"status"`
	Number *int   `gorm:"column:number" json:"number"`

	Phone           *string `gorm:"column:phone;type:varchar(40)" json:"phone"`
	ProfilePhotoURL *string `gorm:"column:profile_photo_url;type:text" json:"profile_photo_url"`

	LifeProject         *string `gorm:"column:life_project;type:text" json:"life_project"`
	YouthClubSemester1  *string `gorm:"column:youth_club_semester_1;type:varchar(160)" json:"youth_club_semester_1"`
	YouthClubSemester2  *string `gorm:"column:youth_club_semester_2;type:varchar(160)" json:"youth_club_semester_2"`
	ElectiveSemester1   *string `gorm:"column:elective_semester_1;type:varchar(160)" json:"elective_semester_1"`
	ElectiveSemester2   *string `gorm:"column:elective_semester_2;type:varchar(160)" json:"elective_semester_2"`
	TutorTeacher        *string `gorm:"column:tutor_teacher;type:varchar(160)" json:"tutor_teacher"`
	Guardian1           *string `gorm:"column:guardian_1;type:varchar(160)" json:"guardian_1"`
	Guardian2           *string `gorm:"column:guardian_2;type:varchar(160)" json:"guardian_2"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }
