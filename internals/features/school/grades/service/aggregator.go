package service

import (
	"log"
	"math"

	"github.com/google/uuid"

	activityModel "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
)

/* =========================================================
   Fechamento ponderado
   =========================================================

   Nota final do aluno = Σ (score / max_score × 10) × weight, somando só
   as atividades COM nota lançada (score não-NULL). Atividade sem nota
   contribui zero: não entra como nota zero nem renormaliza os pesos:
   um aluno com avaliações pendentes mostra um total parcial, de
   propósito. Com pesos somando 1 e tudo gabaritado, o fechamento dá
   exatamente 10.0. */

// GradeIndex indexa as notas de UM aluno por atividade.
type GradeIndex map[uuid.UUID]*float64

func BuildGradeIndex(studentID uuid.UUID, grades []gradeModel.GradeModel) GradeIndex {
	idx := make(GradeIndex)
	for i := range grades {
		if grades[i].StudentID == studentID {
			idx[grades[i].ActivityID] = grades[i].Score
		}
	}
	return idx
}

// WeightedFinalScore computa o fechamento de um aluno sobre as atividades
// da turma. Arredonda para 1 casa decimal (half away from zero).
//
// max_score ≤ 0 é erro de configuração e já é barrado no create/update da
// atividade; se uma linha legada aparecer assim, a atividade é pulada com
// warning em vez de dividir por zero.
func WeightedFinalScore(activities []activityModel.ActivityModel, grades GradeIndex) float64 {
	total := 0.0
	for i := range activities {
		act := &activities[i]
		score, ok := grades[act.ID]
		if !ok || score == nil {
			continue // sem nota lançada: não soma nada
		}
		if act.MaxScore <= 0 {
			log.Printf("⚠️ atividade %s com max_score=%v ignorada no fechamento", act.ID, act.MaxScore)
			continue
		}
		normalized := (*score / act.MaxScore) * 10
		total += normalized * act.Weight
	}
	return Round1(total)
}

// Round1 arredonda para 1 casa decimal, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
