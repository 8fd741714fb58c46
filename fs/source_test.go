package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/locmt"
	"github.com/fwojciec/locmt/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"single line without newline", "Hi", []string{"Hi"}},
		{"trailing newline dropped", "Hi\nHello there.\n", []string{"Hi", "Hello there."}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline is one blank line", "\n", []string{""}},
		{"crlf endings", "a\r\nb\r\n", []string{"a", "b"}},
		{"two trailing newlines keep one blank line", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fs.SplitLines(tt.text)

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads lines in order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "lines.txt")
		require.NoError(t, os.WriteFile(path, []byte("Hi\nHello there.\n"), 0644))

		lines, err := fs.NewSourceLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"Hi", "Hello there."}, lines)
	})

	t.Run("empty file yields no lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		lines, err := fs.NewSourceLoader().Load(path)

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("missing file returns EINPUT", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSourceLoader().Load(filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, locmt.EINPUT, locmt.ErrorCode(err))
	})

	t.Run("directory returns EINPUT", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSourceLoader().Load(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, locmt.EINPUT, locmt.ErrorCode(err))
	})
}
