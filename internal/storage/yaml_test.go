package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	Name  string   `yaml:"name"`
	Tags  []string `yaml:"tags"`
	Count int      `yaml:"count"`
}

func TestWriteThenReadYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "fixture.yml")

	want := fixture{Name: "daily", Tags: []string{"a", "b"}, Count: 3}
	require.NoError(t, WriteYamlFile(path, want))

	got, err := ReadYamlFile[fixture](path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadYamlFile_AbsentFile(t *testing.T) {
	_, err := ReadYamlFile[fixture](filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadYamlFile_MalformedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := ReadYamlFile[fixture](path)
	require.Error(t, err)
}
