package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nETHREQ_ENV_A=\"quoted\"\nETHREQ_ENV_B=set-by-file\n"), 0o600))

	t.Setenv("ETHREQ_ENV_B", "set-by-shell")
	os.Unsetenv("ETHREQ_ENV_A")
	t.Cleanup(func() { os.Unsetenv("ETHREQ_ENV_A") })

	require.NoError(t, Load(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "quoted", os.Getenv("ETHREQ_ENV_A"))
	assert.Equal(t, "set-by-shell", os.Getenv("ETHREQ_ENV_B"))
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(path, []byte("ETHREQ_ENV_C='unterminated\n"), 0o600))

	assert.Error(t, Load(path))
}
