package qrcode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableURL(t *testing.T) {
	assert.Equal(t, "https://restaurante.com/mesa/7", TableURL("https://restaurante.com", "7"))
	assert.Equal(t, "https://restaurante.com/mesa/7", TableURL("https://restaurante.com/", "7"))
}

func TestWriteTableCode(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTableCode("https://restaurante.com", "3", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mesa-3-qrcode.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "qrcodes")

	require.NoError(t, WriteAll("https://restaurante.com", 4, dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}
