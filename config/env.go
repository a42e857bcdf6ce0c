package config

import (
	"os"

	"github.com/joho/godotenv"
)

// FromEnv builds both configs from PAYHERE_* environment variables, loading
// a .env file from the working directory first when one exists. Validation
// happens at client construction, not here.
func FromEnv() (GlobalConfig, UserConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return GlobalConfig{}, UserConfig{}, err
	}

	global := GlobalConfig{
		Environment: Environment(getEnv("PAYHERE_ENVIRONMENT", string(EnvSandbox))),
		BaseURL:     getEnv("PAYHERE_BASE_URL", ""),
	}
	user := UserConfig{
		AppID:    getEnv("PAYHERE_APP_ID", ""),
		Username: getEnv("PAYHERE_USERNAME", ""),
		Password: getEnv("PAYHERE_PASSWORD", ""),
	}
	return global, user, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
