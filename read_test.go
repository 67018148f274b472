package tbltex_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/tbltex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Parallel()
	input := "# x, \"y z\"\n1,2\n\n# second comment\n3\t4  5\r\n"
	data, err := tbltex.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y z"}, data.Header)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4", "5"}}, data.Rows)
	assert.Equal(t, 2, data.Width())
}

func TestReadNoHeader(t *testing.T) {
	t.Parallel()
	data, err := tbltex.Read(strings.NewReader("a b\n"))
	require.NoError(t, err)
	assert.Nil(t, data.Header)
	assert.Equal(t, [][]string{{"a", "b"}}, data.Rows)
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()
	data, err := tbltex.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, data.Rows)
	assert.Equal(t, 0, data.Width())
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o600))
	data, err := tbltex.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, data.Rows)
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := tbltex.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, tbltex.ErrNoInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
