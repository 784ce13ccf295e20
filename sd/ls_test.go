package sd

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/rstms/sdfs"
	"github.com/rstms/sdfs/fatfs"
	"github.com/stretchr/testify/require"
)

func listing(t *testing.T, root *Root, path string, flags uint8) []string {
	dir := root.Open(path, sdfs.FileRead)
	require.True(t, dir.Valid())
	defer dir.Close()

	var buf bytes.Buffer
	dir.Ls(flags, 0, sdfs.NewWriterSink(&buf))
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestLsSizes(t *testing.T) {
	root := newTestTree(t)
	lines := listing(t, root, "/d", LsSize)
	require.ElementsMatch(t, []string{"sub", "x 10", "y 20"}, lines)
}

func TestLsPlain(t *testing.T) {
	root := newTestTree(t)
	lines := listing(t, root, "/d", 0)
	require.ElementsMatch(t, []string{"sub", "x", "y"}, lines)
}

func TestLsSkipsDotEntries(t *testing.T) {
	root := newTestTree(t)
	for _, line := range listing(t, root, "/d", LsRecurse|LsSize|LsDate) {
		require.False(t, strings.HasPrefix(strings.TrimLeft(line, " "), "."))
	}
}

func TestLsDate(t *testing.T) {
	root := newTestTree(t)
	stamped := regexp.MustCompile(`^[xy] \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \d+$`)

	var files int
	for _, line := range listing(t, root, "/d", LsDate|LsSize) {
		if line == "sub" {
			continue
		}
		require.Regexp(t, stamped, line)
		files++
	}
	require.Equal(t, 2, files)
}

func TestLsRecursive(t *testing.T) {
	root := newTestTree(t)
	lines := listing(t, root, "/d", LsRecurse)
	require.Contains(t, lines, "sub")
	require.Contains(t, lines, "  z")
	require.Contains(t, lines, "x")
	require.Contains(t, lines, "y")
}

func TestLsChildOpenFailure(t *testing.T) {
	drv := newStubDriver()
	drv.dirs["/"] = []sdfs.FileInfo{dirEntry("good"), dirEntry("bad"), fileEntry("z", 3)}
	drv.dirs["/good"] = []sdfs.FileInfo{fileEntry("inner", 1)}
	drv.fail["/bad"] = sdfs.ResDiskErr

	root := New(fatfs.NewCard(), drv)
	require.True(t, root.Begin(sdfs.DetectNone))
	dir := root.OpenRoot()
	require.True(t, dir.Valid())

	var buf bytes.Buffer
	dir.Ls(LsRecurse, 0, sdfs.NewWriterSink(&buf))
	dir.Close()

	// the unopenable subdirectory is reported inline and the walk
	// continues with the remaining entries
	want := "good\n  inner\nbad\nerror opening dir: bad\nz\n"
	require.Equal(t, want, buf.String())

	// the subdirectory that did open was released
	require.True(t, drv.opened["/good"].closed)
}

func TestLsOnFileHandle(t *testing.T) {
	root := newTestTree(t)
	f := root.Open("/d/x", sdfs.FileRead)
	require.True(t, f.Valid())

	var buf bytes.Buffer
	f.Ls(LsRecurse, 0, sdfs.NewWriterSink(&buf))
	require.Empty(t, buf.String())
	f.Close()
}
