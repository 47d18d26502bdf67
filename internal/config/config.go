package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	StorageFilePath  string
	DatabaseURI      string
	JWTSecret        string
	SeedDemoData     bool
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	ServerRunAddress = os.Getenv("SERVER_RUN_ADDRESS")
	if ServerRunAddress == "" {
		ServerRunAddress = "0.0.0.0:8080"
	}

	StorageFilePath = os.Getenv("STORAGE_FILE_PATH")
	if StorageFilePath == "" {
		StorageFilePath = "payroast.db"
	}

	// When set, the Postgres-backed entity store is used instead of the
	// single-file store.
	DatabaseURI = os.Getenv("DATABASE_URI")

	JWTSecret = os.Getenv("JWT_SECRET")
	if JWTSecret == "" {
		JWTSecret = "supersecretkey"
	}

	SeedDemoData = os.Getenv("SEED_DEMO_DATA") == "true"
}
