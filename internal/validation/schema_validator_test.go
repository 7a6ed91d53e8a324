package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rewardSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"xp": {"type": "integer", "minimum": 0},
		"coins": {"type": "integer", "minimum": 0}
	},
	"required": ["xp", "coins"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("rewards", []byte(rewardSchema)))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid rewards", data: `{"xp": 10, "coins": 5}`},
		{name: "missing coins", data: `{"xp": 10}`, errorMsg: "required"},
		{name: "negative xp", data: `{"xp": -1, "coins": 5}`, errorMsg: "at /xp"},
		{name: "wrong type", data: `{"xp": "ten", "coins": 5}`, errorMsg: "type"},
		{name: "malformed", data: `{"xp":`, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "rewards")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_RegisterSchema(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("rewards", []byte(rewardSchema)))

	// the first registration wins
	require.NoError(t, v.RegisterSchema("rewards", []byte(`{"type": "string"}`)))
	assert.NoError(t, v.ValidateBytes([]byte(`{"xp": 6, "coins": 3}`), "rewards"))

	err := v.RegisterSchema("broken", []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")

	assert.ErrorIs(t, v.ValidateBytes([]byte(`{}`), "broken"), ErrUnknownSchema)
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("rewards", []byte(rewardSchema)))

	path := filepath.Join(t.TempDir(), "rewards.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"xp": 8, "coins": 4}`), 0o644))

	assert.NoError(t, v.ValidateFile(path, "rewards"))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "rewards")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_Concurrent(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.RegisterSchema("rewards", []byte(rewardSchema)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes([]byte(`{"xp": 1, "coins": 1}`), "rewards"))
		}()
	}
	wg.Wait()
}
