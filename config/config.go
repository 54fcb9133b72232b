package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

// Config is read once at startup and handed to the pieces that need it.
type Config struct {
	Port      string
	JWTSecret string
	// BaseURL is the absolute origin used when building pagination links,
	// e.g. https://mosquee-annour.bj
	BaseURL string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	// PublicUserCreate opens POST /users to unauthenticated callers. Some
	// deployments register members through the public site, others only
	// through the admin dashboard.
	PublicUserCreate bool

	CORSOrigins []string

	SMTP utils.SMTPConfig
}

// Load reads the environment. JWT secret, database settings and base URL are
// required; their absence is a startup error, not something to limp past.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		BaseURL:   os.Getenv("BASE_URL"),
		DBHost:    os.Getenv("DB_HOST"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASSWORD"),
		DBName:    os.Getenv("DB_NAME"),

		PublicUserCreate: os.Getenv("PUBLIC_USER_CREATE") == "true",
		SMTP: utils.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenv("SMTP_PORT", "587"),
			Email:    os.Getenv("SMTP_EMAIL"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = []string{origins}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	for _, req := range []struct{ name, value string }{
		{"JWT_SECRET", cfg.JWTSecret},
		{"BASE_URL", cfg.BaseURL},
		{"DB_HOST", cfg.DBHost},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPass},
		{"DB_NAME", cfg.DBName},
	} {
		if req.value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", req.name)
		}
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL connection, configures pooling and migrates the
// schema. The returned handle is injected into the store; nothing holds it as
// a package global.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Africa/Porto-Novo",
		cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.MultiLanguageText{},
		&models.User{},
		&models.Sermon{},
		&models.News{},
		&models.Activity{},
		&models.Project{},
		&models.Donation{},
		&models.Subscriber{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}
