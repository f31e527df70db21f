package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfilesMissingFileIsEmpty(t *testing.T) {
	p, err := LoadProfiles(filepath.Join(t.TempDir(), "profiles.yaml"))
	require.NoError(t, err)

	_, ok := p.Lookup("anything")
	assert.False(t, ok)
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := `profiles:
  noise:
    - "tid:"
    - "pid:"
    - "cpu usage"
  errors:
    - "[error]"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadProfiles(path)
	require.NoError(t, err)

	noise, ok := p.Lookup("noise")
	require.True(t, ok)
	assert.Equal(t, []string{"tid:", "pid:", "cpu usage"}, noise)

	errs, ok := p.Lookup("errors")
	require.True(t, ok)
	assert.Equal(t, []string{"[error]"}, errs)

	_, ok = p.Lookup("missing")
	assert.False(t, ok)
}

func TestLoadProfilesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t not yaml ["), 0644))

	_, err := LoadProfiles(path)
	assert.Error(t, err)
}
