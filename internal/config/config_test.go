package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("SEODAP_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "database url")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SEODAP_DATABASE_URL", "postgres://localhost:5432/seodap")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Seodap Teacher API", cfg.AppName)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, 30*time.Second, cfg.SnapshotTTL)
	require.Equal(t, 2000, cfg.FetchLimit)
	require.Equal(t, "Asia/Seoul", cfg.DisplayZone.String())
	require.Empty(t, cfg.TeacherAccessKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SEODAP_DATABASE_URL", "postgres://localhost:5432/seodap")
	t.Setenv("SEODAP_APP_PORT", "9090")
	t.Setenv("SEODAP_SNAPSHOT_CACHE_TTL", "45s")
	t.Setenv("SEODAP_SNAPSHOT_FETCH_LIMIT", "500")
	t.Setenv("SEODAP_TEACHER_ACCESS_KEY", "classroom-7")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, 45*time.Second, cfg.SnapshotTTL)
	require.Equal(t, 500, cfg.FetchLimit)
	require.Equal(t, "classroom-7", cfg.TeacherAccessKey)
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("SEODAP_DATABASE_URL", "postgres://localhost:5432/seodap")
	t.Setenv("SEODAP_DISPLAY_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "display timezone")
}
