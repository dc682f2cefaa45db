package helper

import "encoding/json"

/* =========================================================
   PATCH FIELD: tri-state (ausente | null | valor)
   =========================================================

   Um PUT parcial precisa distinguir "campo não enviado" (mantém o valor
   gravado) de "campo enviado como null" (limpa o valor). Os DTOs de update
   declaram cada campo como PatchField[T] e aplicam só os presentes. */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Set marca o campo como presente com o valor dado (útil em testes e binds).
func (p *PatchField[T]) Set(v T) {
	p.Present = true
	p.Value = &v
}
