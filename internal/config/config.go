package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBUser            string        `env:"DB_USER" envDefault:"guardia"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"guardia"`
	DBName            string        `env:"DB_NAME" envDefault:"guardia"`
	DBSSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"release"`

	JWTSecret       string        `env:"JWT_SECRET" envDefault:"supersecretkey"`
	JWTTTL          time.Duration `env:"JWT_TTL" envDefault:"12h"`
	VigilanteJWTTTL time.Duration `env:"VIGILANTE_JWT_TTL" envDefault:"24h"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`

	HashidSalt      string `env:"HASHID_SALT" envDefault:"guardia-negocios"`
	HashidMinLength int    `env:"HASHID_MIN_LENGTH" envDefault:"8"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`

	B2KeyID        string `env:"B2_KEY_ID"`
	B2AppKey       string `env:"B2_APP_KEY"`
	B2Bucket       string `env:"B2_BUCKET"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`

	WatermarkURL     string        `env:"WATERMARK_URL"`
	WatermarkTimeout time.Duration `env:"WATERMARK_TIMEOUT" envDefault:"10s"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// MigrateURL is the DSN in URL form, as golang-migrate expects it.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// StorageEnabled reports whether B2 credentials were provided.
func (c *Config) StorageEnabled() bool {
	return c.B2KeyID != "" && c.B2AppKey != "" && c.B2Bucket != ""
}
