package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bluecst.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Trace)
	assert.True(t, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	testData := []struct {
		Name      string
		Content   string
		Expected  Config
		ExpectErr bool
	}{
		{
			Name:     "empty file keeps defaults",
			Content:  "",
			Expected: Config{Format: FormatText, Color: true},
		},
		{
			Name:     "all keys",
			Content:  "format = \"yaml\"\ntrace = true\ncolor = false\n",
			Expected: Config{Format: FormatYAML, Trace: true, Color: false},
		},
		{
			Name:     "partial",
			Content:  "format = \"tokens\"\n",
			Expected: Config{Format: FormatTokens, Color: true},
		},
		{
			Name:      "invalid format",
			Content:   "format = \"xml\"\n",
			ExpectErr: true,
		},
		{
			Name:      "unknown key",
			Content:   "formatt = \"text\"\n",
			ExpectErr: true,
		},
		{
			Name:      "malformed toml",
			Content:   "format = \n",
			ExpectErr: true,
		},
	}

	for _, tt := range testData {
		t.Run(tt.Name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.Content))
			if tt.ExpectErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.Expected, *cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
