package cmd

import (
	"errors"
	"io/fs"
	"os"

	"orgchart/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
)

// Defaults for keys left empty in the environment.
const (
	DefaultHTTPPort         = "8080"
	DefaultCompanyName      = "TechCorp"
	DefaultSnapshotSchedule = "0 */5 * * * *"
	DefaultReportSchedule   = "0 0 * * * *"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	CompanyName      string
	SnapshotSchedule string
	ReportSchedule   string
	LogLevel         string
	LogFormat        string
}

// LoadConfig reads envFiles into the process environment and builds a Config
// from it. Missing files are skipped; variables already set are not overridden.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		HTTPPort:         getEnv("HTTP_PORT", DefaultHTTPPort),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        getEnv("DB_SSLMODE", "disable"),
		CompanyName:      getEnv("COMPANY_NAME", DefaultCompanyName),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", DefaultSnapshotSchedule),
		ReportSchedule:   getEnv("REPORT_SCHEDULE", DefaultReportSchedule),
		LogLevel:         getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:        getEnv("LOG_FORMAT", DefaultLogFormat),
	}, nil
}

// DatabaseEnabled reports whether a database host is configured. Without one
// the service runs purely in memory.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// Postgres returns the connection settings.
func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
