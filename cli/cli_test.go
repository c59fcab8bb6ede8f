package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = []string{"8", "13", "6", "1", "20", "10", "7"}

func parse(t *testing.T, args ...string) (*kong.Context, error) {
	t.Helper()
	var c CLI
	parser, err := kong.New(&c, kong.Name("bstree"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	return parser.Parse(args)
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	kctx, err := parse(t, args...)
	require.NoError(t, err)

	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, kctx.Run(&Context{Out: &out, Log: log}))
	return out.String()
}

func TestTraverse(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		order    string
		expected string
	}{
		{"in", "1 6 7 8 10 13 20\n"},
		{"pre", "8 6 1 7 13 10 20\n"},
		{"post", "1 7 6 10 20 13 8\n"},
		{"level", "8 6 13 1 7 10 20\n"},
	}

	for _, test := range tests {
		args := append([]string{"traverse", "--order=" + test.order}, example...)
		assert.Equal(test.expected, run(t, args...), "order %s", test.order)
	}

	// in-order is the default
	assert.Equal("1 6 7 8 10 13 20\n", run(t, append([]string{"traverse"}, example...)...))
}

func TestTraverseEmpty(t *testing.T) {
	assert.Equal(t, "(empty)\n", run(t, "traverse"))
}

func TestTraverseBadOrder(t *testing.T) {
	_, err := parse(t, "traverse", "--order=sideways", "1")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out := run(t, append([]string{"stats"}, example...)...)
	assert.Equal(t, "size: 7\npeek: 8\nmin: 1\nmax: 20\nmin-depth: 3\nmax-depth: 3\n", out)

	out = run(t, "stats")
	assert.Equal(t, "size: 0\npeek: none\nmin: none\nmax: none\nmin-depth: 0\nmax-depth: 0\n", out)
}

func TestSplit(t *testing.T) {
	assert := assert.New(t)

	out := run(t, append([]string{"split"}, example...)...)
	assert.Equal("detached: 1 6 7\nremaining: 8 10 13 20\n", out)

	out = run(t, append([]string{"split", "--side=right"}, example...)...)
	assert.Equal("detached: 10 13 20\nremaining: 1 6 7 8\n", out)

	out = run(t, "split", "--side=right", "5", "1")
	assert.Equal("detached: (empty)\nremaining: 1 5\n", out)
}

func TestSwap(t *testing.T) {
	assert := assert.New(t)

	out := run(t, append([]string{"swap", "--side=right"}, example...)...)
	assert.Equal("swapped: true\nin-order: 1 6 7 13 10 8 20\npre-order: 13 6 1 7 8 10 20\n", out)

	out = run(t, "swap", "5", "9")
	assert.Equal("swapped: false\nin-order: 5 9\npre-order: 5 9\n", out)
}

func TestDrain(t *testing.T) {
	out := run(t, append([]string{"drain"}, example...)...)
	assert.Equal(t, "drained: 1 6 7 8 10 13 20\nempty: true\n", out)
}

func TestFind(t *testing.T) {
	assert := assert.New(t)

	out := run(t, append([]string{"find", "--value=13"}, example...)...)
	assert.Equal("found: true\nsubtree: 10 13 20\nsubtree-height: 2\n", out)

	out = run(t, append([]string{"find", "--value=5"}, example...)...)
	assert.Equal("found: false\nsubtree: (empty)\nsubtree-height: 0\n", out)

	_, err := parse(t, append([]string{"find"}, example...)...)
	assert.Error(err, "--value is required")
}

func TestFileInput(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "values.txt")
	content := "8 13 6\n# a comment line\n1 20 # trailing comment\n\n10\n7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	assert.Equal("8 6 1 7 13 10 20\n", run(t, "traverse", "--order=pre", "--file", path))

	// command line values are inserted before the file's
	assert.Equal("9 8 6 1 7 13 10 20\n", run(t, "traverse", "--order=pre", "-f", path, "9"))
}

func TestMissingFile(t *testing.T) {
	_, err := parse(t, "traverse", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestReadValues(t *testing.T) {
	assert := assert.New(t)

	values, err := readValues(strings.NewReader("3 -1\n  # nothing here\n4\t1 5#9\n"))
	assert.NoError(err)
	assert.Equal([]int{3, -1, 4, 1, 5}, values)

	values, err = readValues(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(values)

	_, err = readValues(strings.NewReader("1 2\n3 four\n"))
	assert.ErrorContains(err, "line 2")
}

func TestLogger(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer

	g := Globals{LogLevel: "debug", LogJSON: true}
	log, err := g.Logger(&buf)
	require.NoError(t, err)
	log.Debug("hello", "size", 3)
	assert.Contains(buf.String(), `"level":"DEBUG"`)
	assert.Contains(buf.String(), `"size":3`)

	buf.Reset()
	g = Globals{LogLevel: "warn"}
	log, err = g.Logger(&buf)
	require.NoError(t, err)
	log.Info("dropped")
	assert.Empty(buf.String())
	log.Warn("kept")
	assert.Contains(buf.String(), "level=WARN")

	g = Globals{LogLevel: "loud"}
	_, err = g.Logger(&buf)
	assert.Error(err)
}
