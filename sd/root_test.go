package sd

import (
	"testing"

	"github.com/rstms/sdfs"
	"github.com/rstms/sdfs/fatfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) *Root {
	root := New(fatfs.NewCard(), fatfs.New(afero.NewMemMapFs()))
	require.True(t, root.Begin(sdfs.DetectNone))
	return root
}

func TestBeginDetect(t *testing.T) {
	card := fatfs.NewCard()
	present := false
	card.Present = func() bool { return present }
	root := New(card, fatfs.New(afero.NewMemMapFs()))

	require.False(t, root.Begin(5))
	present = true
	require.True(t, root.Begin(5))
	require.True(t, root.Begin(sdfs.DetectNone))
}

func TestOpenWriteCreates(t *testing.T) {
	root := newTestRoot(t)
	require.False(t, root.Exists("/new.txt"))

	f := root.Open("/new.txt", sdfs.FileWrite)
	require.True(t, f.Valid())
	require.False(t, f.IsDirectory())
	f.Close()

	require.True(t, root.Exists("/new.txt"))
}

func TestOpenMissingRead(t *testing.T) {
	root := newTestRoot(t)
	f := root.Open("/nope", sdfs.FileRead)
	require.False(t, f.Valid())
	require.Equal(t, sdfs.ResNoFile, f.Result())
	require.Equal(t, "", f.FullName())
}

func TestOpenDirectoryFallback(t *testing.T) {
	root := newTestRoot(t)
	require.True(t, root.Mkdir("/d"))

	f := root.Open("/d", sdfs.FileRead)
	require.True(t, f.Valid())
	require.True(t, f.IsDirectory())
	f.Close()

	// a directory never resolves in file mode, even opened for write
	f = root.Open("/d", sdfs.FileWrite)
	require.True(t, f.Valid())
	require.True(t, f.IsDirectory())
	f.Close()
}

func TestOpenEmptyPath(t *testing.T) {
	root := newTestRoot(t)
	require.True(t, root.Mkdir("/d"))

	// a zero-length path resolves to the filesystem root, in
	// directory mode
	f := root.Open("", sdfs.FileRead)
	require.True(t, f.Valid())
	require.Equal(t, sdfs.ResOK, f.Result())
	require.True(t, f.IsDirectory())

	child := f.OpenNextFile(sdfs.FileRead)
	require.True(t, child.Valid())
	require.Equal(t, "/d", child.FullName())
	child.Close()

	f.Close()
	require.False(t, f.Valid())
	f.Close()
	require.False(t, f.Valid())
}

func TestOpenRoot(t *testing.T) {
	root := newTestRoot(t)
	f := root.OpenRoot()
	require.True(t, f.Valid())
	require.True(t, f.IsDirectory())
	require.Equal(t, "/", f.FullName())
	f.Close()
}

func TestMkdirIdempotent(t *testing.T) {
	root := newTestRoot(t)
	require.True(t, root.Mkdir("/a"))
	require.True(t, root.Mkdir("/a"))
	require.False(t, root.Mkdir("/a/b/c"))
	require.True(t, root.Mkdir("/a/b"))
	require.True(t, root.Mkdir("/a/b/c"))
}

func TestRemove(t *testing.T) {
	root := newTestRoot(t)
	f := root.Open("/x", sdfs.FileWrite)
	require.True(t, f.Valid())
	f.Close()

	require.True(t, root.Remove("/x"))
	require.False(t, root.Remove("/x"))
	require.False(t, root.Exists("/x"))
}

func TestRmdir(t *testing.T) {
	root := newTestRoot(t)
	require.True(t, root.Mkdir("/d"))
	f := root.Open("/d/x", sdfs.FileWrite)
	require.True(t, f.Valid())
	f.Close()

	// not empty
	require.False(t, root.Rmdir("/d"))
	require.True(t, root.Remove("/d/x"))
	require.True(t, root.Rmdir("/d"))
	require.False(t, root.Exists("/d"))
}
