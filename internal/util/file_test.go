package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "axis0")
	assert.NoError(t, os.WriteFile(path, []byte("2048\n"), 0644))

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 2048, value)
}

func TestReadIntFromFileMissing(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "missing")

	// WHEN
	_, err := ReadIntFromFile(path)

	// THEN
	assert.Error(t, err)
}

func TestWriteIntToFileRoundTrip(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "axis0")

	// WHEN
	err := WriteIntToFile(16384, path)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 16384, value)
}

func TestWriteFileAtomicCreatesParentDirs(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "nested", "deeper", "doc.json")

	// WHEN
	err := WriteFileAtomic(path, []byte(`{}`))

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
}

func TestSanitizeFileName(t *testing.T) {
	// GIVEN
	// WHEN / THEN
	assert.Equal(t, "Trail Braking", SanitizeFileName("Trail Braking", "curve"))
	assert.Equal(t, "evil", SanitizeFileName("../../../evil", "curve"))
	assert.Equal(t, "curve", SanitizeFileName("///", "curve"))
	assert.Equal(t, "curve", SanitizeFileName("  ", "curve"))
}
