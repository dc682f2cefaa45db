package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "github.com/profandreluis/MCFACIL/internals/features/school/teachers/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

/* =========================================================
   Encode/decode das sequências serializadas
   =========================================================

   subjects/yearly_goals vivem no banco como JSON-texto. A fronteira de
   storage é AQUI: controller e service só enxergam []string. Conteúdo
   NULL, vazio ou malformado degrada para lista vazia na leitura. */

func EncodeStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateTeacherRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=160"`
	Email       *string  `json:"email" validate:"omitempty,email,max=160"`
	Phone       *string  `json:"phone" validate:"omitempty,max=40"`
	Subjects    []string `json:"subjects"`
	YearlyGoals []string `json:"yearly_goals"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Email != nil {
		v := strings.TrimSpace(*r.Email)
		if v == "" {
			r.Email = nil
		} else {
			r.Email = &v
		}
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		if v == "" {
			r.Phone = nil
		} else {
			r.Phone = &v
		}
	}
}

func (r CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Subjects:    EncodeStringList(r.Subjects),
		YearlyGoals: EncodeStringList(r.YearlyGoals),
	}
}

/* =========================================================
   UPDATE (parcial): tri-state
   ========================================================= */

type UpdateTeacherRequest struct {
	Name        helper.PatchField[string]   `json:"name"`
	Email       helper.PatchField[string]   `json:"email"`
	Phone       helper.PatchField[string]   `json:"phone"`
	Subjects    helper.PatchField[[]string] `json:"subjects"`
	YearlyGoals helper.PatchField[[]string] `json:"yearly_goals"`
}

func (p UpdateTeacherRequest) Validate() string {
	if p.Name.Present {
		if p.Name.Value == nil || strings.TrimSpace(*p.Name.Value) == "" {
			return "name não pode ser vazio"
		}
	}
	return ""
}

func (p UpdateTeacherRequest) Apply(mo *m.TeacherModel) {
	if p.Name.Present && p.Name.Value != nil {
		mo.Name = strings.TrimSpace(*p.Name.Value)
	}
	if p.Email.Present {
		if p.Email.Value == nil {
			mo.Email = nil
		} else {
			v := *p.Email.Value
			mo.Email = &v
		}
	}
	if p.Phone.Present {
		if p.Phone.Value == nil {
			mo.Phone = nil
		} else {
			v := *p.Phone.Value
			mo.Phone = &v
		}
	}
	if p.Subjects.Present {
		var items []string
		if p.Subjects.Value != nil {
			items = *p.Subjects.Value
		}
		mo.Subjects = EncodeStringList(items)
	}
	if p.YearlyGoals.Present {
		var items []string
		if p.YearlyGoals.Value != nil {
			items = *p.YearlyGoals.Value
		}
		mo.YearlyGoals = EncodeStringList(items)
	}
	mo.UpdatedAt = time.Now()
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TeacherResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	ProfilePhotoURL *string   `json:"profile_photo_url"`
	Subjects        []string  `json:"subjects"`
	YearlyGoals     []string  `json:"yearly_goals"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromTeacherModel(mo m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:              mo.ID,
		Name:            mo.Name,
		Email:           mo.Email,
		Phone:           mo.Phone,
		ProfilePhotoURL: mo.ProfilePhotoURL,
		Subjects:        DecodeStringList(mo.Subjects),
		YearlyGoals:     DecodeStringList(mo.YearlyGoals),
		CreatedAt:       mo.CreatedAt,
		UpdatedAt:       mo.UpdatedAt,
	}
}

func FromTeacherModels(rows []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromTeacherModel(rows[i]))
	}
	return out
}
