package config

import (
	"os"

	"github.com/joho/godotenv"
)

var (
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBPath     string
	ServerPort string
)

func init() {
	// A missing .env is fine; the defaults below keep everything in memory.
	_ = godotenv.Load()

	DBHost = os.Getenv("DB_HOST")
	DBUser = os.Getenv("DB_USER")
	DBPassword = os.Getenv("DB_PASSWORD")
	DBName = os.Getenv("DB_NAME")
	DBPort = os.Getenv("DB_PORT")

	DBPath = os.Getenv("DB_PATH")
	if DBPath == "" {
		DBPath = ":memory:"
	}

	ServerPort = os.Getenv("SERVER_PORT")
	if ServerPort == "" {
		ServerPort = "8080"
	}
}
