package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Source string `yaml:"source"`
	Limit  int    `yaml:"limit"`
}

func TestWriteLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := WriteConfig(sample{Source: "mangadex", Limit: 3}, path, 0644)
	require.NoError(t, err)

	cfg := sample{}
	err = LoadConfig(&cfg, path)
	require.NoError(t, err)
	assert.Equal(t, sample{Source: "mangadex", Limit: 3}, cfg)
}

func TestLoadConfigMissing(t *testing.T) {
	err := LoadConfig(&sample{}, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read from")
}

func TestSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := SampleConfig([]byte("source: one\n"), path, 0644)
	require.NoError(t, err)

	err = SampleConfig([]byte("source: two\n"), path, 0644)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "source: one\n", string(data))
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	file := OpenLog(path, 0644)
	_, err := file.Write([]byte("hello\n"))
	require.NoError(t, err)
	CloseLog(file)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteConfigMakesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "filters.yaml")

	err := WriteConfig(sample{Source: "x"}, path, 0644)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
