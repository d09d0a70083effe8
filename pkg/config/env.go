package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Default credentials published in the Schiphol API documentation. Real
// deployments should override them via the environment or a .env file.
const (
	defaultAppID  = "db24436c"
	defaultAppKey = "14d969ef174fd67ff4f26d62f120c204"
)

// API holds the credentials and endpoint settings for the flights API.
type API struct {
	AppID   string
	AppKey  string
	BaseURL string // empty means the client's built-in default
}

// LoadAPI reads API settings from environment variables, after loading a
// .env file if one exists next to the binary.
func LoadAPI() API {
	godotenv.Load()

	return API{
		AppID:   getEnv("SCHIPHOL_APP_ID", defaultAppID),
		AppKey:  getEnv("SCHIPHOL_APP_KEY", defaultAppKey),
		BaseURL: getEnv("SCHIPHOL_BASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
