package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, args ...string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--dir", dir}, args...))
	require.NoError(t, cmd.Execute())
	return dir, out.String()
}

func TestGeneratesPairs(t *testing.T) {
	dir, out := generate(t, "--pairs", "3", "--seed", "7")
	assert.Contains(t, out, "Generated 3 sample pairs")

	for _, name := range []string{"orig_1.txt", "copy_1.txt", "orig_3.txt", "copy_3.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
	assert.NoFileExists(t, filepath.Join(dir, "orig_4.txt"))
}

func TestSeedIsReproducible(t *testing.T) {
	a, _ := generate(t, "--pairs", "1", "--seed", "42")
	b, _ := generate(t, "--pairs", "1", "--seed", "42")

	first, err := os.ReadFile(filepath.Join(a, "copy_1.txt"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(b, "copy_1.txt"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRejectsZeroPairs(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", t.TempDir(), "--pairs", "0"})
	assert.Error(t, cmd.Execute())
}
