package sd

import (
	"github.com/rstms/sdfs"
)

// Root owns the mount state of one filesystem driver instance and
// produces File handles from full path strings. Construct one Root per
// card and pass it to whatever needs filesystem access; it has no
// teardown.
type Root struct {
	card    sdfs.Card
	drv     sdfs.Driver
	mounted bool
}

func New(card sdfs.Card, drv sdfs.Driver) *Root {
	return &Root{card: card, drv: drv}
}

// Begin initializes the media layer, then mounts the filesystem.
// detect identifies an optional hardware detect signal; pass
// sdfs.DetectNone when none is wired. Returns false if either step
// fails; no partial state is usable after a false return.
func (r *Root) Begin(detect uint32) bool {
	if !r.card.Init(detect) {
		return false
	}
	r.mounted = r.drv.Init()
	return r.mounted
}

// Exists reports whether a file or directory is present at path.
func (r *Root) Exists(path string) bool {
	_, res := r.drv.Stat(path)
	return res.OK()
}

// Mkdir creates a directory at path. Creating a directory that already
// exists succeeds; parent directories are not created implicitly.
func (r *Root) Mkdir(path string) bool {
	res := r.drv.Mkdir(path)
	return res == sdfs.ResOK || res == sdfs.ResExist
}

// Remove deletes the file at path.
func (r *Root) Remove(path string) bool {
	return r.drv.Unlink(path).OK()
}

// Rmdir removes the empty directory at path. The FAT driver has a
// single removal primitive for files and directories.
func (r *Root) Rmdir(path string) bool {
	return r.drv.Unlink(path).OK()
}

// Open resolves path into a File handle. The path is first opened as a
// file; if that fails it is retried as a directory. Opening for write
// creates the file when it does not already exist. The returned handle
// may be invalid; check File.Valid, and File.Result for the driver
// code of the final attempt.
func (r *Root) Open(path string, mode sdfs.Mode) *File {
	f := &File{root: r, name: path}

	if mode&sdfs.ModeWrite != 0 && !r.Exists(path) {
		mode |= sdfs.ModeCreateAlways
	}

	fil, res := r.drv.Open(path, mode)
	f.res = res
	if res.OK() {
		f.fil = fil
		return f
	}

	dir, res := r.drv.OpenDir(path)
	f.res = res
	if res.OK() {
		f.dir = dir
	} else {
		f.name = ""
	}
	return f
}

// OpenRoot opens the filesystem's top directory.
func (r *Root) OpenRoot() *File {
	return r.Open(r.drv.RootPath(), sdfs.FileRead)
}
