package walk

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadText reads the file at path and fails if its content is not valid UTF-8.
func ReadText(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(transform.NewReader(f, encoding.UTF8Validator))
	if err != nil {
		return nil, errors.Errorf("decoding file as utf-8: %w", err)
	}
	return content, nil
}

// WriteFileAtomic replaces the file at path with content by writing a
// temporary sibling and renaming it into place. Symlinks are resolved first
// so the link target is updated, and the existing permission bits are kept.
// A missing file is created with mode 0644.
func WriteFileAtomic(path string, content []byte) error {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		target = path
	} else if err != nil {
		return errors.Errorf("resolving file path: %w", err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, target); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
