package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestValidateBackend(t *testing.T) {
	assert.NoError(t, ValidateBackend("file"))
	assert.NoError(t, ValidateBackend("api"))
	assert.ErrorContains(t, ValidateBackend("s3"), "invalid backend")
}

func TestValidateLanguage(t *testing.T) {
	assert.NoError(t, ValidateLanguage("de"))
	assert.NoError(t, ValidateLanguage("JA"))
	err := ValidateLanguage("tlh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en, de")
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(`{"Addresses":{"API":"/ip4/127.0.0.1/tcp/5001"}}`))
	assert.NoError(t, ValidateConfig(`[]`))

	err := ValidateConfig(`{"x":}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON at offset")

	assert.Error(t, ValidateConfig(""))
}

func TestValidateFilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	assert.NoError(t, ValidateFilePath(file))
	assert.ErrorContains(t, ValidateFilePath(dir), "is a directory")
	assert.ErrorContains(t, ValidateFilePath(filepath.Join(dir, "missing.json")), "does not exist")
}
