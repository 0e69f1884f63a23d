package util

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Env ... .env と環境変数から読む設定値
type Env struct {
	DBMS   string
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string
	DBLoc  string

	GCSBucket      string
	GCSCredentials string
}

// LoadEnv ... path の .env を読み込んでから環境変数を取り出す。
// .env が無いときはそのまま環境変数だけを使う。
func LoadEnv(path string) Env {
	if err := godotenv.Load(path); err != nil {
		logrus.WithField("path", path).Debug("no .env file, using process environment")
	}

	return Env{
		DBMS:   getEnv("DBMS", "mysql"),
		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "3306"),
		DBUser: getEnv("DB_USER", "dmoj"),
		DBPass: getEnv("DB_PASS", "root"),
		DBName: getEnv("DB_NAME", "dmoj"),
		DBLoc:  getEnv("DB_LOC", "UTC"),

		GCSBucket:      getEnv("GCS_BUCKET", ""),
		GCSCredentials: getEnv("GCS_CREDENTIALS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
