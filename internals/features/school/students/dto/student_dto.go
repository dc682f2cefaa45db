package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/profandreluis/MCFACIL/internals/features/school/students/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateStudentRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Name    string    `json:"name" validate:"required,min=1,max=160"`
	Status  *string   `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	Number  *int      `json:"number" validate:"omitempty,gte=0"`

	Phone              *string `json:"phone" validate:"omitempty,max=40"`
	LifeProject        *string `json:"life_project"`
	YouthClubSemester1 *string `json:"youth_club_semester_1" validate:"omitempty,max=160"`
	YouthClubSemester2 *string `json:"youth_club_semester_2" validate:"omitempty,max=160"`
	ElectiveSemester1  *string `json:"elective_semester_1" validate:"omitempty,max=160"`
	ElectiveSemester2  *string `json:"elective_semester_2" validate:"omitempty,max=160"`
	TutorTeacher       *string `json:"tutor_teacher" validate:"omitempty,max=160"`
	Guardian1          *string `json:"guardian_1" validate:"omitempty,max=160"`
	Guardian2          *string `json:"guardian_2" validate:"omitempty,max=160"`
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Phone)
	trimPtr(&r.LifeProject)
	trimPtr(&r.YouthClubSemester1)
	trimPtr(&r.YouthClubSemester2)
	trimPtr(&r.ElectiveSemester1)
	trimPtr(&r.ElectiveSemester2)
	trimPtr(&r.TutorTeacher)
	trimPtr(&r.Guardian1)
	trimPtr(&r.Guardian2)
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	mm := m.StudentModel{
		ClassID:            r.ClassID,
		Name:               r.Name,
		Status:             m.StatusAtivo,
		Number:             r.Number,
		Phone:              r.Phone,
		LifeProject:        r.LifeProject,
		YouthClubSemester1: r.YouthClubSemester1,
		YouthClubSemester2: r.YouthClubSemester2,
		ElectiveSemester1:  r.ElectiveSemester1,
		ElectiveSemester2:  r.ElectiveSemester2,
		TutorTeacher:       r.TutorTeacher,
		Guardian1:          r.Guardian1,
		Guardian2:          r.Guardian2,
	}
	if r.Status != nil {
		mm.Status = *r.Status
	}
	return mm
}

/* =========================================================
   UPDATE (parcial): tri-state via PatchField
   =========================================================

   Campo ausente → mantém o valor gravado.
   Campo presente com valor → sobrescreve (string vazia sobrescreve
   com vazio; não é tratada como ausência).
   Campo presente com null → limpa (só nos anuláveis). */

type UpdateStudentRequest struct {
	Name   helper.PatchField[string] `json:"name"`
	Status helper.PatchField[string] `json:"status"`
	Number helper.PatchField[int]    `json:"number"`

	Phone              helper.PatchField[string] `json:"phone"`
	ProfilePhotoURL    helper.PatchField[string] `json:"profile_photo_url"`
	LifeProject        helper.PatchField[string] `json:"life_project"`
	YouthClubSemester1 helper.PatchField[string] `json:"youth_club_semester_1"`
	YouthClubSemester2 helper.PatchField[string] `json:"youth_club_semester_2"`
	ElectiveSemester1  helper.PatchField[string] `json:"elective_semester_1"`
	ElectiveSemester2  helper.PatchField[string] `json:"elective_semester_2"`
	TutorTeacher       helper.PatchField[string] `json:"tutor_teacher"`
	Guardian1          helper.PatchField[string] `json:"guardian_1"`
	Guardian2          helper.PatchField[string] `json:"guardian_2"`
}

// Validate cobre o que as tags não alcançam no tri-state.
func (p UpdateStudentRequest) Validate() string {
	if p.Name.Present {
		if p.Name.Value == nil || strings.TrimSpace(*p.Name.Value) == "" {
			return "name não pode ser vazio"
		}
	}
	if p.Status.Present {
		if p.Status.Value == nil {
			return "status não pode ser null"
		}
		if s := *p.Status.Value; s != m.StatusAtivo && s != m.StatusInativo {
			return "status deve ser Ativo ou Inativo"
		}
	}
	return ""
}

func applyNullable(dst **string, f helper.PatchField[string]) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

// Apply grava só os campos presentes. updated_at é renovado SEMPRE que o
// update é aceito, mesmo com o conjunto efetivo de campos vazio.
func (p UpdateStudentRequest) Apply(mo *m.StudentModel) {
	if p.Name.Present && p.Name.Value != nil {
		mo.Name = strings.TrimSpace(*p.Name.Value)
	}
	if p.Status.Present && p.Status.Value != nil {
		mo.Status = *p.Status.Value
	}
	if p.Number.Present {
		if p.Number.Value == nil {
			mo.Number = nil
		} else {
			v := *p.Number.Value
			mo.Number = &v
		}
	}

	applyNullable(&mo.Phone, p.Phone)
	applyNullable(&mo.ProfilePhotoURL, p.ProfilePhotoURL)
	applyNullable(&mo.LifeProject, p.LifeProject)
	applyNullable(&mo.YouthClubSemester1, p.YouthClubSemester1)
	applyNullable(&mo.YouthClubSemester2, p.YouthClubSemester2)
	applyNullable(&mo.ElectiveSemester1, p.ElectiveSemester1)
	applyNullable(&mo.ElectiveSemester2, p.ElectiveSemester2)
	applyNullable(&mo.TutorTeacher, p.TutorTeacher)
	applyNullable(&mo.Guardian1, p.Guardian1)
	applyNullable(&mo.Guardian2, p.Guardian2)

	mo.UpdatedAt = time.Now()
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	ID      uuid.UUID `json:"id"`
	ClassID uuid.UUID `json:"class_id"`

	Name   string `json:"name"`
	Status string `json:"status"`
	Number *int   `json:"number"`

	Phone              *string `json:"phone"`
	ProfilePhotoURL    *string `json:"profile_photo_url"`
	LifeProject        *string `json:"life_project"`
	YouthClubSemester1 *string `json:"youth_club_semester_1"`
	YouthClubSemester2 *string `json:"youth_club_semester_2"`
	ElectiveSemester1  *string `json:"elective_semester_1"`
	ElectiveSemester2  *string `json:"elective_semester_2"`
	TutorTeacher       *string `json:"tutor_teacher"`
	Guardian1          *string `json:"guardian_1"`
	Guardian2          *string `json:"guardian_2"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromStudentModel(mo m.StudentModel) StudentResponse {
	return StudentResponse{
		ID:                 mo.ID,
		ClassID:            mo.ClassID,
		Name:               mo.Name,
		Status:             mo.Status,
		Number:             mo.Number,
		Phone:              mo.Phone,
		ProfilePhotoURL:    mo.ProfilePhotoURL,
		LifeProject:        mo.LifeProject,
		YouthClubSemester1: mo.YouthClubSemester1,
		YouthClubSemester2: mo.YouthClubSemester2,
		ElectiveSemester1:  mo.ElectiveSemester1,
		ElectiveSemester2:  mo.ElectiveSemester2,
		TutorTeacher:       mo.TutorTeacher,
		Guardian1:          mo.Guardian1,
		Guardian2:          mo.Guardian2,
		CreatedAt:          mo.CreatedAt,
		UpdatedAt:          mo.UpdatedAt,
	}
}

func FromStudentModels(rows []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromStudentModel(rows[i]))
	}
	return out
}
