package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jaskfx.log")
	l, err := New(Config{Level: "debug", Path: path})
	require.NoError(t, err)

	l.WithComponent("test").Infow("hello", "n", 1)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
	require.Contains(t, string(data), `"component":"test"`)
}

func TestNewWithoutPathIsNop(t *testing.T) {
	l, err := New(Config{Level: "bogus"})
	require.NoError(t, err)
	l.Infow("dropped")
	require.NoError(t, l.Close())
}
