package config

import (
	"errors"
	"fmt"
	"os"
)

// Config holds everything the process needs at startup. It is built once in
// main and handed to the router and controllers explicitly.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	AdminUsername string
	AdminPassword string

	JWTSecret string
	UploadDir string
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honoured. JWT_SECRET has no fallback on purpose.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "3000"),
		DBUser:        getenv("DB_USER", "root"),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        getenv("DB_NAME", "caffe"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}

// DSN builds the mysql connection string. parseTime is required so that
// orders.created_at scans into time.Time.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
