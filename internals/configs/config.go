package configs

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	AppEnv string
	Port   string

	JWTSecret  string
	TokenTTL   time.Duration // 0 = tokens carry no exp claim
	BcryptCost int

	DBDriver      string // postgres | sqlite
	DatabaseURL   string
	SQLitePath    string
	DBAutoMigrate bool
	DBSeed        bool

	QuizMaxPerPage   int
	CorsAllowOrigins string
	RequestTimeout   time.Duration

	LoginRateLimit  int
	SignupRateLimit int
}

// =======================
// ENV LOADER
// =======================
func Load() (Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ no .env file found, using system environment")
		}
	}

	cfg := Config{
		AppEnv:           GetEnv("APP_ENV", "development"),
		Port:             GetEnv("PORT", "3000"),
		JWTSecret:        strings.TrimSpace(GetEnv("JWT_SECRET")),
		DBDriver:         strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		SQLitePath:       GetEnv("SQLITE_PATH", "quizmaker.db"),
		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 0); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.QuizMaxPerPage, err = intEnv("QUIZ_MAX_PER_PAGE", 100); err != nil {
		return Config{}, err
	}
	if cfg.LoginRateLimit, err = intEnv("LOGIN_RATE_LIMIT", 5); err != nil {
		return Config{}, err
	}
	if cfg.SignupRateLimit, err = intEnv("SIGNUP_RATE_LIMIT", 3); err != nil {
		return Config{}, err
	}
	if cfg.DBAutoMigrate, err = boolEnv("DB_AUTO_MIGRATE", false); err != nil {
		return Config{}, err
	}
	if cfg.DBSeed, err = boolEnv("DB_SEED", false); err != nil {
		return Config{}, err
	}

	cfg.DatabaseURL = GetEnv("DATABASE_URL")
	if cfg.DatabaseURL == "" && cfg.DBDriver == "postgres" {
		cfg.DatabaseURL = postgresDSN(
			GetEnv("DB_USER"),
			GetEnv("DB_PASSWORD"),
			GetEnv("DB_HOST", "localhost"),
			GetEnv("DB_PORT", "5432"),
			GetEnv("DB_NAME", "quizmaker"),
			GetEnv("DB_SSLMODE", "disable"),
		)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// postgresDSN builds a postgres:// URL with credentials and database name escaped.
func postgresDSN(user, password, host, port, name, sslMode string) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else if user != "" {
		u.User = url.User(user)
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	q.Set("application_name", "quizmaker")
	u.RawQuery = q.Encode()
	return u.String()
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.QuizMaxPerPage < 0 {
		return errors.New("QUIZ_MAX_PER_PAGE must not be negative")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
