package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallAndRestore(t *testing.T) {
	gameDir := t.TempDir()
	outputDir := t.TempDir()
	langDir := LangDir(gameDir, "de_DE")
	require.NoError(t, os.MkdirAll(langDir, 0755))

	dst := filepath.Join(langDir, DialogFileName)
	bak := dst + ".bak"
	require.NoError(t, os.WriteFile(dst, []byte("original"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, DialogFileName), []byte("merged"), 0644))

	installed, err := Install(gameDir, "de_DE", outputDir, TLKFileNames)
	require.NoError(t, err)
	assert.Equal(t, []string{DialogFileName}, installed)

	dstBytes, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("merged"), dstBytes)
	bakBytes, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), bakBytes)

	// a second install must not clobber the pristine backup
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, DialogFileName), []byte("merged again"), 0644))
	_, err = Install(gameDir, "de_DE", outputDir, TLKFileNames)
	require.NoError(t, err)
	bakBytes, err = os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), bakBytes)

	restored, err := Restore(gameDir, "de_DE", TLKFileNames)
	require.NoError(t, err)
	assert.Equal(t, []string{DialogFileName}, restored)

	dstBytes, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), dstBytes)
	assert.False(t, Exists(bak))
}

func TestRestore_NoBackups(t *testing.T) {
	gameDir := t.TempDir()
	require.NoError(t, os.MkdirAll(LangDir(gameDir, "de_DE"), 0755))

	restored, err := Restore(gameDir, "de_DE", TLKFileNames)
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "nope")))
}
