package sd

import (
	"strings"

	"github.com/rstms/sdfs"
)

// joinPath appends name to dir, inserting exactly one separator.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// IsDirectory reports whether the handle refers to a directory. A
// handle with neither resource open is classified by a fresh metadata
// query on its path.
func (f *File) IsDirectory() bool {
	if f.dir != nil {
		return true
	}
	if f.fil != nil {
		return false
	}
	if f.name == "" {
		Fatalf("IsDirectory called on closed handle")
		return false
	}
	info, res := f.root.drv.Stat(f.name)
	return res.OK() && info.IsDir()
}

// OpenNextFile advances the directory cursor and opens the next
// non-dot entry as a new handle in the requested mode. On exhaustion
// or driver error the returned handle is invalid and carries the
// terminal result code.
func (f *File) OpenNextFile(mode sdfs.Mode) *File {
	if f.dir == nil {
		return errorHandle(sdfs.ResInvalidObject)
	}
	for {
		info, res := f.dir.Read()
		if !res.OK() || info.Name == "" {
			return errorHandle(res)
		}
		if info.IsDotEntry() {
			continue
		}
		return f.root.Open(joinPath(f.name, info.Name), mode)
	}
}

// RewindDirectory resets enumeration to the first entry by closing and
// reopening the directory on the same path. No-op on file handles.
func (f *File) RewindDirectory() {
	if f.dir == nil {
		return
	}
	f.dir.Close()
	f.dir, f.res = f.root.drv.OpenDir(f.name)
	if !f.res.OK() {
		f.dir = nil
	}
}
