package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_DefaultsWithoutFiles(t *testing.T) {
	cfg, err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, int32(10), cfg.DbServer.MaxConns)
	require.False(t, cfg.Archive.Enabled)
	require.Equal(t, 30, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml", cfg.Sources.ECBCurrentURL)
	require.Equal(t, 3600, cfg.Scheduler.JobDurationSec)
	require.Equal(t, []string{"ECB", "ECB-HIST90", "IMF"}, cfg.Scheduler.Providers)
}

func TestInit_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_server:
  port: "9090"
db_server:
  host: db.local
  name: rates
archive:
  enabled: true
sources:
  imf_url: file:///srv/mirror/rms_five.tsv
scheduler:
  job_duration_sec: 60
  providers: [ECB-HIST]
`), 0o600))

	t.Setenv("DB_PASS", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCHEDULER_PROVIDERS", "ecb, imf ,")

	cfg, err := Init(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, "db.local", cfg.DbServer.Host)
	require.Equal(t, "secret", cfg.DbServer.Pass)
	require.True(t, cfg.Archive.Enabled)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "file:///srv/mirror/rms_five.tsv", cfg.Sources.IMFURL)
	require.Equal(t, 60, cfg.Scheduler.JobDurationSec)
	require.Equal(t, []string{"ecb", "imf"}, cfg.Scheduler.Providers)
}

func TestInit_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_server: [unterminated"), 0o600))

	_, err := Init(path)
	require.ErrorContains(t, err, "error reading config file")
}

func TestDbServer_GetConnectionStr(t *testing.T) {
	cfg := DbServer{User: "u", Pass: "p", Host: "h", Port: "5432", Name: "n"}
	require.Equal(t, "user=u password=p host=h port=5432 dbname=n sslmode=disable", cfg.GetConnectionStr())
}
