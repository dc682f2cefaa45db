package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MigrationSecret string
	OSSKeyPrefix    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Arquivo .env não encontrado, usando ENV do sistema")
		} else {
			log.Println("✅ Arquivo .env carregado!")
		}
	} else {
		log.Println("🚀 Rodando no Railway, usando ENV do sistema")
	}

	MigrationSecret = GetEnv("MIGRATION_SECRET")
	OSSKeyPrefix = GetEnv("OSS_KEY_PREFIX", "")

	if MigrationSecret == "" {
		log.Println("⚠️ MIGRATION_SECRET não definido, /internal/migrate ficará bloqueado")
	} else {
		log.Println("✅ MIGRATION_SECRET carregado.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
