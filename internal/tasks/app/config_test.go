package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecrets(t *testing.T) {
	// Neither secret set: startup must fail.
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("JWT_ACCESS_SECRET", "access")
	_, err = LoadConfig()
	require.Error(t, err, "refresh secret still missing")

	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "access", cfg.AccessSecret)
	require.Equal(t, "refresh", cfg.RefreshSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "taskdeck", cfg.Issuer)
	require.Equal(t, "tasks.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_FILE", "/tmp/test-tasks.db")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, "/tmp/test-tasks.db", cfg.DatabaseFile)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}
