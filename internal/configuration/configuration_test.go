package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseInitializesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", config.BackendURL)
	require.Equal(t, 30*time.Second, config.Timeout())
	require.Equal(t, StorageDriverSQLite, config.Storage.Driver)
	require.Equal(t, "chatHistory", config.Storage.Key)
	require.NotContains(t, config.Storage.Path, "~")

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written to disk")
}

func TestParseFillsMissingFieldsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"backend_url": "http://pantry.local", "storage": {"driver": "bolt"}}`), 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "http://pantry.local", config.BackendURL)
	require.Equal(t, StorageDriverBolt, config.Storage.Driver)
	require.Equal(t, "chatHistory", config.Storage.Key)
	require.Equal(t, 1000, config.Chat.MaxInputHistory)
}

func TestParseEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("PANTRY_BACKEND_URL", "http://override:9000")
	t.Setenv("PANTRY_STORAGE_DRIVER", "memory")
	t.Setenv("PANTRY_REQUEST_TIMEOUT", "5")

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "http://override:9000", config.BackendURL)
	require.Equal(t, StorageDriverMemory, config.Storage.Driver)
	require.Equal(t, 5*time.Second, config.Timeout())
}

func TestParseRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()

	badDriver := filepath.Join(dir, "driver.json")
	require.NoError(t, os.WriteFile(badDriver, []byte(`{"storage": {"driver": "redis"}}`), 0644))
	_, err := Parse(badDriver)
	require.ErrorContains(t, err, "unknown storage driver")

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{`), 0644))
	_, err = Parse(malformed)
	require.ErrorContains(t, err, "unmarshaling into config")
}
