package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingAPIKey(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestValidateEnv_FileBackend(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvAPIKey, "k")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PostgresNeedsDBVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvStorageBackend, "postgres")
	t.Setenv(EnvDBUser, "u")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDBPassword)
	assert.Contains(t, err.Error(), EnvDBHost)
	assert.NotContains(t, err.Error(), EnvDBUser)
}

func TestValidateDiscordEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvDiscordToken, "token")

	err := ValidateDiscordEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDiscordAppID)

	t.Setenv(EnvDiscordAppID, "123")
	assert.NoError(t, ValidateDiscordEnv())
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvAPIKey, ExampleAPIKey)
	t.Setenv(EnvDBPassword, ExampleDBPassword)
	t.Setenv(EnvStorageBackend, "memory")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "memory")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvAPIKey, "a-real-key")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
