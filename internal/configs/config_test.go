package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingEnvFile = "testdata/does-not-exist.env"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "SUPERJOB_KEY", "SUPERJOB_BASE_URL", "SUPERJOB_TOWN_ID",
		"HH_BASE_URL", "HH_AREA_ID", "LANGUAGES", "HTTP_USER_AGENT", "REQUEST_DELAY_MS",
		"STDOUT_LOG_LEVEL", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST", "FLUENTBIT_PORT", "FLUENTBIT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPERJOB_KEY", "v3.r.key")

	cfg, err := LoadConfig(missingEnvFile)
	require.NoError(t, err)

	assert.Equal(t, "salary-stats", cfg.AppName)
	assert.Equal(t, "v3.r.key", cfg.SuperJob.APIKey)
	assert.Equal(t, "https://api.superjob.ru/2.0/vacancies/", cfg.SuperJob.BaseURL)
	assert.Equal(t, 4, cfg.SuperJob.TownID)
	assert.Equal(t, "https://api.hh.ru/vacancies", cfg.HeadHunter.BaseURL)
	assert.Equal(t, 1, cfg.HeadHunter.AreaID)
	assert.Equal(t, []string{"JavaScript", "Java", "Python"}, cfg.Languages)
	assert.Equal(t, time.Duration(0), cfg.HTTP.RequestDelay)
	assert.Equal(t, "info", cfg.StdoutLogger.Level)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_MissingKey(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(missingEnvFile)
	assert.ErrorContains(t, err, "SUPERJOB_KEY")
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPERJOB_KEY", "key")
	t.Setenv("LANGUAGES", " Go, Rust ,,C++ ")
	t.Setenv("HH_AREA_ID", "2")
	t.Setenv("SUPERJOB_TOWN_ID", "not-a-number")
	t.Setenv("REQUEST_DELAY_MS", "250")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "fluent-bit")

	cfg, err := LoadConfig(missingEnvFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust", "C++"}, cfg.Languages)
	assert.Equal(t, 2, cfg.HeadHunter.AreaID)
	assert.Equal(t, 4, cfg.SuperJob.TownID, "invalid value falls back to default")
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.RequestDelay)
	assert.True(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "fluent-bit", cfg.FluentBit.Host)
	assert.Equal(t, 24224, cfg.FluentBit.Port)
}

func TestLoadConfig_FluentWithoutHostIsDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPERJOB_KEY", "key")
	t.Setenv("FLUENTBIT_ENABLED", "true")

	cfg, err := LoadConfig(missingEnvFile)
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUPERJOB_KEY=from-file\nLANGUAGES=Go\n"), 0o600))
	// godotenv выставляет переменные процесса, вернем их в исходное состояние
	t.Cleanup(func() {
		os.Unsetenv("SUPERJOB_KEY")
		os.Unsetenv("LANGUAGES")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SuperJob.APIKey)
	assert.Equal(t, []string{"Go"}, cfg.Languages)
}
