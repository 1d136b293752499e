package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.dart")
	require.NoError(t, os.WriteFile(good, []byte("'Grüße'.i18n"), 0644))
	content, err := ReadText(good)
	require.NoError(t, err)
	assert.Equal(t, "'Grüße'.i18n", string(content))

	bad := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(bad, []byte{'o', 'k', 0xff, 0xfe, 0x00}, 0644))
	_, err = ReadText(bad)
	require.Error(t, err, "invalid utf-8 should fail")
	assert.Contains(t, err.Error(), "decoding file as utf-8")

	_, err = ReadText(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()

	t.Run("preserves_mode", func(t *testing.T) {
		path := filepath.Join(dir, "script.sh")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0755))

		require.NoError(t, WriteFileAtomic(path, []byte("new")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})

	t.Run("creates_missing_file", func(t *testing.T) {
		path := filepath.Join(dir, "out.json")
		require.NoError(t, WriteFileAtomic(path, []byte("{}")))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(content))
	})

	t.Run("writes_through_symlink", func(t *testing.T) {
		target := filepath.Join(dir, "target.txt")
		link := filepath.Join(dir, "link.txt")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0644))
		require.NoError(t, os.Symlink(target, link))

		require.NoError(t, WriteFileAtomic(link, []byte("new")))

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink, "link should still be a symlink")
	})

	t.Run("leaves_no_temp_files", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})
}
