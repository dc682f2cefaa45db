package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestUpsertGradeValidate(t *testing.T) {
	ids := `"student_id":"` + uuid.NewString() + `","activity_id":"` + uuid.NewString() + `"`

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"score ausente é rejeitado", `{` + ids + `}`, true},
		{"score null é aceito (limpa a nota)", `{` + ids + `,"score":null}`, false},
		{"score numérico é aceito", `{` + ids + `,"score":8.5}`, false},
		{"score zero é aceito", `{` + ids + `,"score":0}`, false},
		{"score negativo é rejeitado", `{` + ids + `,"score":-1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpsertGradeRequest
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

func TestUpsertGradeToModel(t *testing.T) {
	var req UpsertGradeRequest
	if err := json.Unmarshal([]byte(`{"student_id":"`+uuid.NewString()+`","activity_id":"`+uuid.NewString()+`","score":null}`), &req); err != nil {
		t.Fatal(err)
	}
	if mm := req.ToModel(); mm.Score != nil {
		t.Errorf("score null deveria mapear para NULL, veio %v", *mm.Score)
	}

	if err := json.Unmarshal([]byte(`{"score":7.5}`), &req); err != nil {
		t.Fatal(err)
	}
	mm := req.ToModel()
	if mm.Score == nil || *mm.Score != 7.5 {
		t.Errorf("score = %v, quer 7.5", mm.Score)
	}
}
