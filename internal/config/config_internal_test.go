package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ConfigName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	return path
}

func TestTryLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "all fields",
			content: "DefaultVersion = \"3.7\"\nVerbosity = \"warn\"\n",
			want:    Config{DefaultVersion: "3.7", Verbosity: "warn"},
		},
		{
			name:    "empty file",
			content: "",
			want:    Config{},
		},
		{
			name:    "unknown keys",
			content: "DefaultVersion = \"3.7\"\nDefaultArchitecture = \"64\"\n",
			wantErr: true,
		},
		{
			name:    "malformed default version",
			content: "DefaultVersion = \"latest\"\n",
			wantErr: true,
		},
		{
			name:    "malformed verbosity",
			content: "Verbosity = \"loud\"\n",
			wantErr: true,
		},
		{
			name:    "not toml",
			content: `{"DefaultVersion": "3.7"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)

			got, err := tryLoadConfig(path)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)

			tt.want.LoadPath = path
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "DefaultVersion = \"3\"\n")

	got, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, "3", got.DefaultVersion)
	assert.Equal(t, path, got.LoadPath)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))

	assert.Error(t, err)
}

func TestLoad_MissingDefaultConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("AppData", tmp)

	got, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, Config{}, got)
}

func TestConfig_DefaultTag(t *testing.T) {
	t.Parallel()

	c := Config{DefaultVersion: "3.6-32"}

	tg, ok := c.DefaultTag()

	assert.True(t, ok)
	assert.Equal(t, "3.6-32", tg.String())

	_, ok = Config{}.DefaultTag()

	assert.False(t, ok)
}
