package parser

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readAll(t *testing.T, src LogSource) []*Line {
	t.Helper()
	var lines []*Line
	for line, err := range Lines(context.Background(), src) {
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return lines
}

func TestLineReader_Next(t *testing.T) {
	path := writeLog(t, "Latency a b c d 12.5\nOther x y z\nLatency p q r s 7.0\n")

	source := NewLineReader(path)
	defer source.Close()

	lines := readAll(t, source)
	require.Len(t, lines, 3)

	assert.Equal(t, "Latency a b c d 12.5\n", lines[0].Raw)
	assert.Equal(t, 1, lines[0].LineNum)
	assert.Equal(t, path, lines[0].Source)
	assert.Equal(t, "Latency p q r s 7.0\n", lines[2].Raw)
	assert.Equal(t, 3, lines[2].LineNum)
}

func TestLineReader_NoTrailingNewline(t *testing.T) {
	path := writeLog(t, "first\nlast")

	source := NewLineReader(path)
	defer source.Close()

	lines := readAll(t, source)
	require.Len(t, lines, 2)
	assert.Equal(t, "last", lines[1].Raw)
}

func TestLineReader_EmptyLinesAreNotEOF(t *testing.T) {
	path := writeLog(t, "a\n\n\nb\n")

	source := NewLineReader(path)
	defer source.Close()

	lines := readAll(t, source)
	require.Len(t, lines, 4)
	assert.Equal(t, "\n", lines[1].Raw)
	assert.Equal(t, "\n", lines[2].Raw)
	assert.Equal(t, "b\n", lines[3].Raw)
}

func TestLineReader_KeepsCarriageReturn(t *testing.T) {
	path := writeLog(t, "Latency a b c d 1\r\n")

	source := NewLineReader(path)
	defer source.Close()

	lines := readAll(t, source)
	require.Len(t, lines, 1)
	assert.Equal(t, "Latency a b c d 1\r\n", lines[0].Raw)
}

func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	path := writeLog(t, long+"\n")

	source := NewLineReader(path)
	defer source.Close()

	lines := readAll(t, source)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Raw, len(long)+1)
}

func TestLineReader_EmptyFile(t *testing.T) {
	source := NewLineReader(writeLog(t, ""))
	defer source.Close()

	_, err := source.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReader_EOFIsSticky(t *testing.T) {
	source := NewLineReader(writeLog(t, "only"))
	defer source.Close()

	ctx := context.Background()
	_, err := source.Next(ctx)
	require.NoError(t, err)

	for range 2 {
		_, err = source.Next(ctx)
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestLineReader_FileNotFound(t *testing.T) {
	source := NewLineReader("/nonexistent/file.log")
	defer source.Close()

	_, err := source.Next(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "opening log file")
}

func TestLineReader_Open(t *testing.T) {
	source := NewLineReader(writeLog(t, "x\n"))
	defer source.Close()

	require.NoError(t, source.Open())
	require.NoError(t, source.Open(), "second Open is a no-op")

	lines := readAll(t, source)
	assert.Len(t, lines, 1)
}

func TestLineReader_ContextCancellation(t *testing.T) {
	source := NewLineReader(writeLog(t, "line\n"))
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineReader_Close(t *testing.T) {
	source := NewLineReader(writeLog(t, "line\nline\n"))

	_, err := source.Next(context.Background())
	require.NoError(t, err)

	assert.NoError(t, source.Close())

	_, err = source.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF, "closed source reports EOF")
}

func TestNewReaderSource(t *testing.T) {
	source := NewReaderSource("stdin", strings.NewReader("a b\nc"))
	defer source.Close()

	lines := readAll(t, source)
	require.Len(t, lines, 2)
	assert.Equal(t, "stdin", lines[0].Source)
	assert.Equal(t, "stdin", source.Source())
	assert.Equal(t, "c", lines[1].Raw)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLines_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	source := NewReaderSource("broken", failingReader{err: boom})

	var errs []error
	for line, err := range Lines(context.Background(), source) {
		assert.Nil(t, line)
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
	assert.Contains(t, errs[0].Error(), "reading broken")
}

func TestLines_EarlyBreak(t *testing.T) {
	source := NewReaderSource("r", strings.NewReader("1\n2\n3\n"))

	var count int
	for range Lines(context.Background(), source) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)

	next, err := source.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3\n", next.Raw)
}
