package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/QuestTown_Go/internal/persistence"
)

// RequiredEnvVars must be set for the API server
var RequiredEnvVars = []string{
	EnvAPIKey,
}

// PostgresEnvVars must be set when STORAGE_BACKEND=postgres
var PostgresEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// DiscordEnvVars must be set for the Discord bot
var DiscordEnvVars = []string{
	EnvAPIKey,
	EnvDiscordToken,
	EnvDiscordAppID,
}

// ValidateEnv checks that the variables the server needs are set,
// including the ones the selected storage backend needs
func ValidateEnv() error {
	required := append([]string(nil), RequiredEnvVars...)
	if os.Getenv(EnvStorageBackend) == persistence.BackendPostgres {
		required = append(required, PostgresEnvVars...)
	}
	return checkSet(required)
}

// ValidateDiscordEnv checks the variables the Discord bot needs
func ValidateDiscordEnv() error {
	return checkSet(DiscordEnvVars)
}

func checkSet(vars []string) error {
	var missing []string
	for _, envVar := range vars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv(EnvAPIKey) == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv(EnvStorageBackend) == persistence.BackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND=memory keeps progress only until the process exits")
	}

	return warnings, nil
}
