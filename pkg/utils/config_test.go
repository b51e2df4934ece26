package utils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with nil values", func(t *testing.T) {
		config := NewConfig(nil)
		require.NotNil(t, config)
		assert.Empty(t, config.Get("anything"))
	})

	t.Run("with values", func(t *testing.T) {
		values := map[string]string{
			"key1": "value1",
			"key2": "value2",
		}
		config := NewConfig(values)

		assert.Equal(t, "value1", config.Get("key1"))
		assert.Equal(t, "value2", config.Get("key2"))

		// Verify it's a copy, not a reference
		values["key1"] = "modified"
		assert.NotEqual(t, "modified", config.Get("key1"))
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SPARKY_TEST_FROM_FILE=file_value\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SPARKY_TEST_FROM_FILE") })

	t.Setenv("SPARKY_TEST_FROM_ENV", "env_value")

	config := NewConfigFromEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "file_value", config.Get("SPARKY_TEST_FROM_FILE"))
	assert.Equal(t, "env_value", config.Get("SPARKY_TEST_FROM_ENV"))
}

func TestEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	assert.Equal(t, ".env", EnvFile())

	t.Setenv("ENV_FILE", "custom.env")
	assert.Equal(t, "custom.env", EnvFile())
}

func TestConfigGetWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"existing": "value",
		"empty":    "",
	})

	assert.Equal(t, "value", config.GetWithDefault("existing", "default"))
	assert.Equal(t, "default", config.GetWithDefault("missing", "default"))
	assert.Equal(t, "default", config.GetWithDefault("empty", "default"))
}

func TestConfigGetIntWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"valid_int":   "42",
		"negative":    "-10",
		"invalid_int": "not_a_number",
		"empty":       "",
	})

	tests := []struct {
		key      string
		expected int
	}{
		{"valid_int", 42},
		{"negative", -10},
		{"invalid_int", 999},
		{"empty", 999},
		{"missing", 999},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetIntWithDefault(test.key, 999))
		})
	}
}

func TestConfigGetDurationWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"valid":   "90s",
		"hours":   "24h",
		"invalid": "soon",
	})

	assert.Equal(t, 90*time.Second, config.GetDurationWithDefault("valid", time.Minute))
	assert.Equal(t, 24*time.Hour, config.GetDurationWithDefault("hours", time.Minute))
	assert.Equal(t, time.Minute, config.GetDurationWithDefault("invalid", time.Minute))
	assert.Equal(t, time.Minute, config.GetDurationWithDefault("missing", time.Minute))
}

func TestConfigThreadSafety(t *testing.T) {
	config := NewConfig(map[string]string{"key": "value", "counter": "0"})

	const numGoroutines = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "value", config.Get("key"))
				assert.Equal(t, 0, config.GetIntWithDefault("counter", id))
			}
		}(i)
	}

	wg.Wait()
}
