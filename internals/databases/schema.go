package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	activityModel "github.com/profandreluis/MCFACIL/internals/features/school/activities/model"
	classModel "github.com/profandreluis/MCFACIL/internals/features/school/classes/model"
	gradeModel "github.com/profandreluis/MCFACIL/internals/features/school/grades/model"
	studentModel "github.com/profandreluis/MCFACIL/internals/features/school/students/model"
	teacherModel "github.com/profandreluis/MCFACIL/internals/features/school/teachers/model"
)

// Modelos na ordem pai → filho (grades por último, FKs dependem dos demais).
func schemaModels() []any {
	return []any{
		&classModel.ClassModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&activityModel.ActivityModel{},
		&gradeModel.GradeModel{},
	}
}

// EnsureSchema roda uma única vez no boot, antes de servir tráfego.
// AutoMigrate é idempotente: cria tabelas/colunas/índices ausentes e não
// destrói nada existente.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(schemaModels()...); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	log.Println("✅ Schema verificado (AutoMigrate).")
	return nil
}

// ResetSchema derruba e recria todas as tabelas. Destrutivo, só acessível
// via /internal/migrate com o segredo compartilhado.
func ResetSchema(db *gorm.DB) error {
	models := schemaModels()
	// drop na ordem inversa (filhos antes dos pais)
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}
	log.Println("✅ Schema recriado do zero.")
	return nil
}

// Colunas esperadas por tabela, para o modo de inspeção (/internal/migrate-safe).
var expectedColumns = map[string][]string{
	"classes": {"id", "name", "school_year", "created_at"},
	"students": {
		"id", "class_id", "name", "status", "number", "phone",
		"profile_photo_url", "life_project",
		"youth_club_semester_1", "youth_club_semester_2",
		"elective_semester_1", "elective_semester_2",
		"tutor_teacher", "guardian_1", "guardian_2",
		"created_at", "updated_at",
	},
	"activities": {
		"id", "class_id", "name", "max_score", "weight", "order_index",
		"created_at", "updated_at",
	},
	"grades": {
		"id", "student_id", "activity_id", "score", "created_at", "updated_at",
	},
	"teachers": {
		"id", "name", "email", "phone", "profile_photo_url",
		"subjects", "yearly_goals", "created_at", "updated_at",
	},
}

type TableStatus struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
}

// SchemaStatus inspeciona o drift entre o schema esperado e o banco,
// sem alterar nada.
func SchemaStatus(db *gorm.DB) []TableStatus {
	out := make([]TableStatus, 0, len(expectedColumns))
	for _, m := range schemaModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			continue
		}
		table := stmt.Schema.Table
		st := TableStatus{Table: table, MissingColumns: []string{}}
		st.Exists = db.Migrator().HasTable(m)
		if st.Exists {
			for _, col := range expectedColumns[table] {
				if !db.Migrator().HasColumn(m, col) {
					st.MissingColumns = append(st.MissingColumns, col)
				}
			}
		} else {
			st.MissingColumns = expectedColumns[table]
		}
		out = append(out, st)
	}
	return out
}
