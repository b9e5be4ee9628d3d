package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	DBLogMode   bool
	JWTSecret   string
	GeminiModel string
	NumWorkers  int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := Config{
		Port:        "9446",
		DBPath:      "contaai.db",
		JWTSecret:   "dev-secret-change-me",
		GeminiModel: "gemini-2.0-flash",
		NumWorkers:  4,
	}

	if v := os.Getenv("PORT"); v != "" {
		env.Port = v
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		env.DBPath = v
	}

	if v := os.Getenv("DB_LOG"); v == "1" || v == "true" {
		env.DBLogMode = true
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		env.JWTSecret = v
	}

	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		env.GeminiModel = v
	}

	if v := os.Getenv("NUM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.NumWorkers = n
		}
	}

	return &env, nil
}
