package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	helper "github.com/profandreluis/MCFACIL/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateActivityRequest struct {
	ClassID  uuid.UUID `json:"class_id" validate:"required"`
	Name     string    `json:"name" validate:"required,min=1,max=160"`
	MaxScore float64   `json:"max_score" validate:"required,gt=0"`
	// peso esperado em [0,1], mas não imposto (a soma ponderada é literal)
	Weight     *float64 `json:"weight" validate:"omitempty,gte=0"`
	OrderIndex *int     `json:"order_index" validate:"omitempty,gte=0"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateActivityRequest) ToModel() m.ActivityModel {
	mm := m.ActivityModel{
		ClassID:    r.ClassID,
		Name:       r.Name,
		MaxScore:   r.MaxScore,
		Weight:     1,
		OrderIndex: r.OrderIndex,
	}
	if r.Weight != nil {
		mm.Weight = *r.Weight
	}
	return mm
}

/* =========================================================
   UPDATE (parcial): tri-state
   ========================================================= */

type UpdateActivityRequest struct {
	Name       helper.PatchField[string]  `json:"name"`
	MaxScore   helper.PatchField[float64] `json:"max_score"`
	Weight     helper.PatchField[float64] `json:"weight"`
	OrderIndex helper.PatchField[int]     `json:"order_index"`
}

func (p UpdateActivityRequest) Validate() string {
	if p.Name.Present {
		if p.Name.Value == nil || strings.TrimSpace(*p.Name.Value) == "" {
			return "name não pode ser vazio"
		}
	}
	// max_score vira divisor na agregação: zero/negativo é erro de
	// configuração, barrado aqui
	if p.MaxScore.Present {
		if p.MaxScore.Value == nil || *p.MaxScore.Value <= 0 {
			return "max_score deve ser maior que zero"
		}
	}
	if p.Weight.Present {
		if p.Weight.Value == nil || *p.Weight.Value < 0 {
			return "weight não pode ser negativo"
		}
	}
	return ""
}

func (p UpdateActivityRequest) Apply(mo *m.ActivityModel) {
	if p.Name.Present && p.Name.Value != nil {
		mo.Name = strings.TrimSpace(*p.Name.Value)
	}
	if p.MaxScore.Present && p.MaxScore.Value != nil {
		mo.MaxScore = *p.MaxScore.Value
	}
	if p.Weight.Present && p.Weight.Value != nil {
		mo.Weight = *p.Weight.Value
	}
	if p.OrderIndex.Present {
		if p.OrderIndex.Value == nil {
			mo.OrderIndex = nil
		} else {
			v := *p.OrderIndex.Value
			mo.OrderIndex = &v
		}
	}
	mo.UpdatedAt = time.Now()
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ActivityResponse struct {
	ID         uuid.UUID `json:"id"`
	ClassID    uuid.UUID `json:"class_id"`
	Name       string    `json:"name"`
	MaxScore   float64   `json:"max_score"`
	Weight     float64   `json:"weight"`
	OrderIndex *int      `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromActivityModel(mo m.ActivityModel) ActivityResponse {
	return ActivityResponse{
		ID:         mo.ID,
		ClassID:    mo.ClassID,
		Name:       mo.Name,
		MaxScore:   mo.MaxScore,
		Weight:     mo.Weight,
		OrderIndex: mo.OrderIndex,
		CreatedAt:  mo.CreatedAt,
		UpdatedAt:  mo.UpdatedAt,
	}
}

func FromActivityModels(rows []m.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromActivityModel(rows[i]))
	}
	return out
}
