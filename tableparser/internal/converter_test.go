package internal

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "input.spec")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvert(t *testing.T) {
	testData := []struct {
		input  string
		output string
	}{
		{"ignored\nignored\n1\n0\n1\n", "1x1x10\n0\t=>\t0\n1\t=>\t1\n"},
		{"ignored\nignored\n0\n5\n", "0x0x10\n0\t=>\t5\n"},
		{"x\ny\n2\n1\n3\n0\n2", "2x2x10\n0\t=>\t1\n1\t=>\t3\n2\t=>\t0\n3\t=>\t2\n"},
	}
	for _, data := range testData {
		path := writeSpecFile(t, data.input)
		outputPath, err := Convert(path)
		require.NoError(t, err)
		assert.Equal(t, path+DefaultSuffix, outputPath)
		content, err := ioutil.ReadFile(outputPath)
		require.NoError(t, err)
		assert.Equal(t, data.output, string(content))
	}
}

func TestConvertOverwrites(t *testing.T) {
	path := writeSpecFile(t, "a\nb\n0\n7\n")
	require.NoError(t, ioutil.WriteFile(path+DefaultSuffix, []byte("stale content that is longer\n"), 0644))
	_, err := Convert(path)
	require.NoError(t, err)
	content, err := ioutil.ReadFile(path + DefaultSuffix)
	require.NoError(t, err)
	assert.Equal(t, "0x0x10\n0\t=>\t7\n", string(content))
}

func TestConvertCustomSuffix(t *testing.T) {
	path := writeSpecFile(t, "a\nb\n0\n7\n")
	converter := &Converter{Suffix: ".tt"}
	outputPath, err := converter.Convert(path)
	require.NoError(t, err)
	assert.Equal(t, path+".tt", outputPath)
	assert.FileExists(t, outputPath)
}

func TestConvertFailuresLeaveNoOutput(t *testing.T) {
	testData := []struct {
		input string
		kind  ErrorKind
	}{
		{"a\nb\n2\n0\n1\n2\n", RowCountMismatch},
		{"a\nb\nbad\n0\n", MalformedHeader},
		{"a\nb\n1\n0\nbad\n", MalformedRow},
	}
	for _, data := range testData {
		path := writeSpecFile(t, data.input)
		_, err := Convert(path)
		kind, ok := KindOf(err)
		require.True(t, ok, "%q", data.input)
		assert.Equal(t, data.kind, kind, "%q", data.input)
		_, statErr := os.Stat(path + DefaultSuffix)
		assert.True(t, os.IsNotExist(statErr), "%q", data.input)
	}
}

func TestConvertEmptyPath(t *testing.T) {
	_, err := Convert("")
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnreadableFile, kind)
}

func TestConvertUnreadableFile(t *testing.T) {
	_, err := Convert(filepath.Join(t.TempDir(), "missing.spec"))
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, UnreadableFile, kind)
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}

func TestConvertOutputWriteFailure(t *testing.T) {
	path := writeSpecFile(t, "a\nb\n0\n1\n")
	// A directory in place of the table file cannot be opened for writing.
	require.NoError(t, os.Mkdir(path+DefaultSuffix, 0755))
	_, err := Convert(path)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, OutputWriteFailure, kind)
}
