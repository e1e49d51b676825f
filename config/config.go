package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort  string
	Environment string

	MainServiceGetData      string
	MainServicePostSchedule string

	Solver       string
	SolveTimeout time.Duration
	CacheTTL     time.Duration

	ArchiveEnabled bool
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

func Load() *Config {
	solveSeconds, _ := strconv.Atoi(getEnv("SOLVE_TIMEOUT_SECONDS", "120"))
	cacheMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))
	archiveEnabled, _ := strconv.ParseBool(getEnv("ARCHIVE_ENABLED", "false"))
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		MainServiceGetData:      getEnv("MAIN_SERVICE_GET_DATA", "http://localhost:3000/api/v1/scheduling-data"),
		MainServicePostSchedule: getEnv("MAIN_SERVICE_POST_SCHEDULE", "http://localhost:3000/api/v1/schedules"),

		Solver:       getEnv("SOLVER", "glpk"),
		SolveTimeout: time.Duration(solveSeconds) * time.Second,
		CacheTTL:     time.Duration(cacheMinutes) * time.Minute,

		ArchiveEnabled: archiveEnabled,
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "minio:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "class-schedules"),
		MinIOUseSSL:    useSSL,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
