package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	m "github.com/profandreluis/MCFACIL/internals/features/school/students/model"
)

func sptr(s string) *string { return &s }

func baseStudent() m.StudentModel {
	n := 7
	return m.StudentModel{
		ID:        uuid.New(),
		ClassID:   uuid.New(),
		Name:      "João Silva",
		Status:    m.StatusAtivo,
		Number:    &n,
		Phone:     sptr("11 99999-0000"),
		Guardian1: sptr("Maria Silva"),
		Guardian2: sptr("José Silva"),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestUpdateStudentApplyPreservesUntouchedFields(t *testing.T) {
	mo := baseStudent()

	var req UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"name":"New Name"}`), &req); err != nil {
		t.Fatal(err)
	}
	if msg := req.Validate(); msg != "" {
		t.Fatalf("Validate() = %q, quer vazio", msg)
	}

	before := time.Now().Add(-time.Minute)
	req.Apply(&mo)

	if mo.Name != "New Name" {
		t.Errorf("name = %q, quer New Name", mo.Name)
	}
	if mo.Guardian1 == nil || *mo.Guardian1 != "Maria Silva" {
		t.Errorf("guardian_1 deveria ficar intocado, veio %v", mo.Guardian1)
	}
	if mo.Guardian2 == nil || *mo.Guardian2 != "José Silva" {
		t.Errorf("guardian_2 deveria ficar intocado, veio %v", mo.Guardian2)
	}
	if mo.Number == nil || *mo.Number != 7 {
		t.Errorf("number deveria ficar intocado, veio %v", mo.Number)
	}
	if !mo.UpdatedAt.After(before) {
		t.Error("updated_at deveria ser renovado pelo Apply")
	}
}

func TestUpdateStudentApplyNullClears(t *testing.T) {
	mo := baseStudent()

	var req UpdateStudentRequest
	if err := json.Unmarshal([]byte(`{"phone": null, "number": null}`), &req); err != nil {
		t.Fatal(err)
	}
	req.Apply(&mo)

	if mo.Phone != nil {
		t.Errorf("phone enviado como null deveria limpar, veio %v", *mo.Phone)
	}
	if mo.Number != nil {
		t.Errorf("number enviado como null deveria limpar, veio %v", *mo.Number)
	}
	if mo.Guardian1 == nil {
		t.Error("guardian_1 não enviado não deveria ser limpo")
	}
}

func TestUpdateStudentValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"vazio é aceito", `{}`, false},
		{"name null é rejeitado", `{"name": null}`, true},
		{"name em branco é rejeitado", `{"name": "   "}`, true},
		{"status null é rejeitado", `{"status": null}`, true},
		{"status fora do enum é rejeitado", `{"status": "Pendente"}`, true},
		{"status Inativo é aceito", `{"status": "Inativo"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateStudentRequest
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

func TestCreateStudentNormalizeAndToModel(t *testing.T) {
	req := CreateStudentRequest{
		ClassID:   uuid.New(),
		Name:      "  João  ",
		Phone:     sptr("   "),
		Guardian1: sptr(" Maria "),
	}
	req.Normalize()

	if req.Name != "João" {
		t.Errorf("name = %q, quer João", req.Name)
	}
	if req.Phone != nil {
		t.Error("phone só com espaços deveria virar nil")
	}
	if req.Guardian1 == nil || *req.Guardian1 != "Maria" {
		t.Errorf("guardian_1 = %v, quer Maria", req.Guardian1)
	}

	mo := req.ToModel()
	if mo.Status != m.StatusAtivo {
		t.Errorf("status default = %q, quer %q", mo.Status, m.StatusAtivo)
	}

	inativo := m.StatusInativo
	req.Status = &inativo
	if mo = req.ToModel(); mo.Status != m.StatusInativo {
		t.Errorf("status explícito = %q, quer %q", mo.Status, m.StatusInativo)
	}
}
