package helper

import (
	"encoding/json"
	"testing"
)

func TestPatchFieldTriState(t *testing.T) {
	type payload struct {
		Name  PatchField[string]  `json:"name"`
		Score PatchField[float64] `json:"score"`
	}

	t.Run("campo ausente fica Present=false", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatal(err)
		}
		if p.Name.Present || p.Score.Present {
			t.Errorf("campos ausentes marcados como presentes: %+v", p)
		}
	})

	t.Run("null explícito fica Present=true com Value=nil", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"score": null}`), &p); err != nil {
			t.Fatal(err)
		}
		if !p.Score.Present {
			t.Fatal("score enviado como null deveria estar Present")
		}
		if p.Score.Value != nil {
			t.Errorf("score null deveria ter Value=nil, veio %v", *p.Score.Value)
		}
	})

	t.Run("valor fica Present=true com Value preenchido", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name":"João","score":8.5}`), &p); err != nil {
			t.Fatal(err)
		}
		if v, ok := p.Name.Get(); !ok || v == nil || *v != "João" {
			t.Errorf("name = %v (present=%v)", v, ok)
		}
		if v, ok := p.Score.Get(); !ok || v == nil || *v != 8.5 {
			t.Errorf("score = %v (present=%v)", v, ok)
		}
	})

	t.Run("string vazia não é ausência", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name":""}`), &p); err != nil {
			t.Fatal(err)
		}
		if !p.Name.Present || p.Name.Value == nil || *p.Name.Value != "" {
			t.Errorf("name vazio deveria ser presente com valor \"\": %+v", p.Name)
		}
	})

	t.Run("tipo errado retorna erro", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"score":"oito"}`), &p); err == nil {
			t.Error("score string deveria falhar o unmarshal")
		}
	})
}

func TestPatchFieldSet(t *testing.T) {
	var f PatchField[int]
	f.Set(42)
	v, ok := f.Get()
	if !ok || v == nil || *v != 42 {
		t.Errorf("Set(42) → Get() = %v, %v", v, ok)
	}
}
