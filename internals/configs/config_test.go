package configs

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("QUIZ_MAX_PER_PAGE", "")
	t.Setenv("DB_AUTO_MIGRATE", "")
	t.Setenv("DB_SEED", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, time.Duration(0), cfg.TokenTTL)
	require.Equal(t, 100, cfg.QuizMaxPerPage)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.DBAutoMigrate)
	require.False(t, cfg.DBSeed)
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("QUIZ_MAX_PER_PAGE", "0")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 0, cfg.QuizMaxPerPage)
	require.True(t, cfg.DBAutoMigrate)
	require.Contains(t, cfg.DatabaseURL, "db.internal")
}

func TestLoadEscapesDatabaseCredentials(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_USER", "quiz admin")
	t.Setenv("DB_PASSWORD", "p@ss/w:rd?#%")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "quizmaker")
	t.Setenv("DB_SSLMODE", "")

	cfg, err := Load()
	require.NoError(t, err)

	u, err := url.Parse(cfg.DatabaseURL)
	require.NoError(t, err)
	require.Equal(t, "quiz admin", u.User.Username())
	pw, ok := u.User.Password()
	require.True(t, ok)
	require.Equal(t, "p@ss/w:rd?#%", pw)
	require.Equal(t, "db.internal:6543", u.Host)
	require.Equal(t, "/quizmaker", u.Path)
	require.Equal(t, "disable", u.Query().Get("sslmode"))
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("TOKEN_TTL", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("TOKEN_TTL", "")
	t.Setenv("DB_DRIVER", "mongo")
	_, err = Load()
	require.Error(t, err)
}
