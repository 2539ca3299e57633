package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretsFile = `
TEST_SECRETS_TOKEN = "file-token"
TEST_SECRETS_MESSAGES = '''
[commands]
about = "I am a bot."
gay = "🏳️‍🌈"
'''
TEST_SECRETS_EMPTY = ""
`

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values", func(t *testing.T) {
		store, err := Load(writeSecrets(t, secretsFile))
		require.NoError(t, err)

		token, ok := store.Get("TEST_SECRETS_TOKEN")
		assert.True(t, ok)
		assert.Equal(t, "file-token", token)

		messages, ok := store.Get("TEST_SECRETS_MESSAGES")
		assert.True(t, ok)
		assert.Contains(t, messages, `about = "I am a bot."`)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("TEST_SECRETS_TOKEN", "env-token")

		store, err := Load(writeSecrets(t, secretsFile), "TEST_SECRETS_TOKEN")
		require.NoError(t, err)

		token, ok := store.Get("TEST_SECRETS_TOKEN")
		assert.True(t, ok)
		assert.Equal(t, "env-token", token)
	})

	t.Run("unlisted environment variables are ignored", func(t *testing.T) {
		t.Setenv("TEST_SECRETS_UNLISTED", "value")

		store, err := Load("", "TEST_SECRETS_TOKEN")
		require.NoError(t, err)

		_, ok := store.Get("TEST_SECRETS_UNLISTED")
		assert.False(t, ok)
	})

	t.Run("missing file falls back to environment", func(t *testing.T) {
		t.Setenv("TEST_SECRETS_TOKEN", "env-token")

		store, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"), "TEST_SECRETS_TOKEN")
		require.NoError(t, err)

		token, ok := store.Get("TEST_SECRETS_TOKEN")
		assert.True(t, ok)
		assert.Equal(t, "env-token", token)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeSecrets(t, "TEST_SECRETS_TOKEN = \"unterminated"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReadFile)
	})
}

func TestStore_Get(t *testing.T) {
	store, err := Load(writeSecrets(t, secretsFile))
	require.NoError(t, err)

	tests := []struct {
		name     string
		key      string
		expected string
		found    bool
	}{
		{name: "present", key: "TEST_SECRETS_TOKEN", expected: "file-token", found: true},
		{name: "absent", key: "TEST_SECRETS_ABSENT", expected: "", found: false},
		{name: "empty", key: "TEST_SECRETS_EMPTY", expected: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := store.Get(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestTOMLParser(t *testing.T) {
	parser := TOMLParser()

	parsed, err := parser.Unmarshal([]byte(`KEY = "value"`))
	require.NoError(t, err)
	assert.Equal(t, "value", parsed["KEY"])

	_, err = parser.Unmarshal([]byte(`KEY = `))
	assert.Error(t, err)

	out, err := parser.Marshal(map[string]interface{}{"KEY": "value"})
	require.NoError(t, err)
	reparsed, err := parser.Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, "value", reparsed["KEY"])
}

func TestLoad_EmptyEnvironmentDoesNotShadowFile(t *testing.T) {
	t.Setenv("TEST_SECRETS_TOKEN", "")

	store, err := Load(writeSecrets(t, secretsFile), "TEST_SECRETS_TOKEN")
	require.NoError(t, err)

	token, ok := store.Get("TEST_SECRETS_TOKEN")
	assert.True(t, ok)
	assert.Equal(t, "file-token", token)
}
