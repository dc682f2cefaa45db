package service

import (
	"testing"

	"github.com/google/uuid"

	activityModel "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
)

func fptr(v float64) *float64 { return &v }

func act(id uuid.UUID, maxScore, weight float64) activityModel.ActivityModel {
	return activityModel.ActivityModel{ID: id, MaxScore: maxScore, Weight: weight}
}

func TestWeightedFinalScore(t *testing.T) {
	prova := uuid.New()
	trabalho := uuid.New()

	tests := []struct {
		name       string
		activities []activityModel.ActivityModel
		grades     GradeIndex
		want       float64
	}{
		{
			name:       "sem notas lançadas",
			activities: []activityModel.ActivityModel{act(prova, 10, 0.6), act(trabalho, 5, 0.4)},
			grades:     GradeIndex{},
			want:       0.0,
		},
		{
			name:       "pesos somando 1 e tudo gabaritado dá 10.0",
			activities: []activityModel.ActivityModel{act(prova, 10, 0.6), act(trabalho, 5, 0.4)},
			grades:     GradeIndex{prova: fptr(10), trabalho: fptr(5)},
			want:       10.0,
		},
		{
			// Prova 1: 8/10 → (8/10*10)*0.6 = 4.8; Trabalho sem nota contribui 0
			name:       "nota parcial não renormaliza pesos",
			activities: []activityModel.ActivityModel{act(prova, 10, 0.6), act(trabalho, 5, 0.4)},
			grades:     GradeIndex{prova: fptr(8)},
			want:       4.8,
		},
		{
			// Trabalho: 5/5 → 10*0.4 = 4.0; total 4.8 + 4.0
			name:       "fechamento completo soma as duas parcelas",
			activities: []activityModel.ActivityModel{act(prova, 10, 0.6), act(trabalho, 5, 0.4)},
			grades:     GradeIndex{prova: fptr(8), trabalho: fptr(5)},
			want:       8.8,
		},
		{
			name:       "nota NULL conta como não lançada",
			activities: []activityModel.ActivityModel{act(prova, 10, 0.6), act(trabalho, 5, 0.4)},
			grades:     GradeIndex{prova: fptr(8), trabalho: nil},
			want:       4.8,
		},
		{
			// linha legada com max_score=0 não pode dividir por zero
			name:       "max_score zero é pulado",
			activities: []activityModel.ActivityModel{act(prova, 0, 0.6), act(trabalho, 5, 0.4)},
			grades:     GradeIndex{prova: fptr(8), trabalho: fptr(5)},
			want:       4.0,
		},
		{
			// 7/10*10*0.33 + 9/10*10*0.33 = 2.31 + 2.97 = 5.28 → 5.3
			name:       "arredonda para 1 casa",
			activities: []activityModel.ActivityModel{act(prova, 10, 0.33), act(trabalho, 10, 0.33)},
			grades:     GradeIndex{prova: fptr(7), trabalho: fptr(9)},
			want:       5.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedFinalScore(tt.activities, tt.grades)
			if got != tt.want {
				t.Errorf("WeightedFinalScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildGradeIndex(t *testing.T) {
	joao := uuid.New()
	maria := uuid.New()
	prova := uuid.New()
	trabalho := uuid.New()

	grades := []gradeModel.GradeModel{
		{StudentID: joao, ActivityID: prova, Score: fptr(8)},
		{StudentID: joao, ActivityID: trabalho, Score: nil},
		{StudentID: maria, ActivityID: prova, Score: fptr(10)},
	}

	idx := BuildGradeIndex(joao, grades)
	if len(idx) != 2 {
		t.Fatalf("índice do aluno tem %d entradas, quer 2", len(idx))
	}
	if s := idx[prova]; s == nil || *s != 8 {
		t.Errorf("nota da prova = %v, quer 8", s)
	}
	if s, ok := idx[trabalho]; !ok || s != nil {
		t.Errorf("nota do trabalho deveria estar presente como NULL (ok=%v, s=%v)", ok, s)
	}
	if _, ok := idx[uuid.New()]; ok {
		t.Error("atividade desconhecida não deveria estar no índice")
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{4.84, 4.8},
		{4.75, 4.8}, // half away from zero (4.75 é exato em binário)
		{-4.75, -4.8},
		{9.99, 10.0},
		{5.28, 5.3},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
