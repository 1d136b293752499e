// Package testutils holds fixtures shared by the textsweep tests
package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// WriteTree creates files below root. Keys are slash-separated paths.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent directories should succeed")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing test file should succeed")
	}
}

// ReadFile returns the content of path as a string.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err, "reading file should succeed")
	return string(content)
}

// Context returns a context carrying a zerolog logger that writes to the test log.
func Context(t testing.TB) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// NoColor disables console colours until the test finishes.
func NoColor(t testing.TB) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}
