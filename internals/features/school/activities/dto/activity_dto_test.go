package dto

import (
	"encoding/json"
	"testing"

	m "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
)

func TestUpdateActivityValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"vazio é aceito", `{}`, false},
		{"max_score zero é rejeitado", `{"max_score": 0}`, true},
		{"max_score negativo é rejeitado", `{"max_score": -5}`, true},
		{"max_score null é rejeitado", `{"max_score": null}`, true},
		{"max_score positivo é aceito", `{"max_score": 10}`, false},
		{"weight negativo é rejeitado", `{"weight": -0.1}`, true},
		{"weight zero é aceito", `{"weight": 0}`, false},
		{"name em branco é rejeitado", `{"name": "  "}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateActivityRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatal(err)
			}
			msg := req.Validate()
			if tt.wantErr && msg == "" {
				t.Error("esperava mensagem de validação, veio vazio")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("esperava aceitar, veio %q", msg)
			}
		})
	}
}

func TestCreateActivityToModelDefaultWeight(t *testing.T) {
	req := CreateActivityRequest{Name: "Prova 1", MaxScore: 10}
	if mm := req.ToModel(); mm.Weight != 1 {
		t.Errorf("weight default = %v, quer 1", mm.Weight)
	}

	w := 0.6
	req.Weight = &w
	if mm := req.ToModel(); mm.Weight != 0.6 {
		t.Errorf("weight explícito = %v, quer 0.6", mm.Weight)
	}
}

func TestUpdateActivityApply(t *testing.T) {
	idx := 2
	mo := m.ActivityModel{Name: "Prova 1", MaxScore: 10, Weight: 0.6, OrderIndex: &idx}

	var req UpdateActivityRequest
	if err := json.Unmarshal([]byte(`{"max_score": 5, "order_index": null}`), &req); err != nil {
		t.Fatal(err)
	}
	req.Apply(&mo)

	if mo.MaxScore != 5 {
		t.Errorf("max_score = %v, quer 5", mo.MaxScore)
	}
	if mo.OrderIndex != nil {
		t.Errorf("order_index null deveria limpar, veio %v", *mo.OrderIndex)
	}
	if mo.Name != "Prova 1" || mo.Weight != 0.6 {
		t.Errorf("campos não enviados deveriam ficar intocados: %+v", mo)
	}
}
