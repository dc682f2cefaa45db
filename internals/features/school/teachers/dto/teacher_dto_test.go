package dto

import (
	"encoding/json"
	"testing"

	"gorm.io/datatypes"

	m "github.com/profandreluis/MCFACIL/internals/features/school/teachers/model"
)

func TestEncodeDecodeStringList(t *testing.T) {
	t.Run("round-trip preserva a ordem", func(t *testing.T) {
		in := []string{"Matemática", "Física", "Robótica"}
		out := DecodeStringList(EncodeStringList(in))
		if len(out) != len(in) {
			t.Fatalf("len = %d, quer %d", len(out), len(in))
		}
		for i := range in {
			if out[i] != in[i] {
				t.Errorf("out[%d] = %q, quer %q", i, out[i], in[i])
			}
		}
	})

	t.Run("nil encoda como lista vazia", func(t *testing.T) {
		if got := string(EncodeStringList(nil)); got != "[]" {
			t.Errorf("EncodeStringList(nil) = %s, quer []", got)
		}
	})

	tests := []struct {
		name string
		raw  datatypes.JSON
	}{
		{"NULL do banco", nil},
		{"texto malformado", datatypes.JSON([]byte(`{broken`))},
		{"json null", datatypes.JSON([]byte(`null`))},
		{"tipo errado", datatypes.JSON([]byte(`"não é lista"`))},
	}
	for _, tt := range tests {
		t.Run("decode degrada para vazio: "+tt.name, func(t *testing.T) {
			got := DecodeStringList(tt.raw)
			if got == nil {
				t.Fatal("decode nunca devolve nil")
			}
			if len(got) != 0 {
				t.Errorf("quer lista vazia, veio %v", got)
			}
		})
	}
}

func TestUpdateTeacherApplySequences(t *testing.T) {
	mo := m.TeacherModel{
		Name:     "Prof. André",
		Subjects: EncodeStringList([]string{"Matemática"}),
	}

	var req UpdateTeacherRequest
	body := `{"subjects": ["Matemática", "Robótica"], "yearly_goals": null}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}
	req.Apply(&mo)

	subjects := DecodeStringList(mo.Subjects)
	if len(subjects) != 2 || subjects[1] != "Robótica" {
		t.Errorf("subjects = %v", subjects)
	}
	// null numa sequência grava lista vazia, nunca NULL cru
	if goals := DecodeStringList(mo.YearlyGoals); len(goals) != 0 {
		t.Errorf("yearly_goals = %v, quer vazio", goals)
	}
	if mo.Name != "Prof. André" {
		t.Errorf("name não enviado deveria ficar intocado, veio %q", mo.Name)
	}
}

func TestFromTeacherModelDecodesSequences(t *testing.T) {
	mo := m.TeacherModel{
		Name:        "Prof. André",
		Subjects:    datatypes.JSON([]byte(`["Matemática"]`)),
		YearlyGoals: nil, // coluna NULL
	}
	resp := FromTeacherModel(mo)
	if len(resp.Subjects) != 1 || resp.Subjects[0] != "Matemática" {
		t.Errorf("subjects = %v", resp.Subjects)
	}
	if resp.YearlyGoals == nil || len(resp.YearlyGoals) != 0 {
		t.Errorf("yearly_goals NULL deveria virar lista vazia, veio %v", resp.YearlyGoals)
	}
}
