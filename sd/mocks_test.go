package sd

import (
	"github.com/rstms/sdfs"
)

// stubDriver serves canned directory trees and records the directory
// objects it hands out, so tests can assert they get released.
type stubDriver struct {
	dirs   map[string][]sdfs.FileInfo
	fail   map[string]sdfs.Result
	opened map[string]*stubDir
}

func newStubDriver() *stubDriver {
	return &stubDriver{
		dirs:   map[string][]sdfs.FileInfo{},
		fail:   map[string]sdfs.Result{},
		opened: map[string]*stubDir{},
	}
}

func (d *stubDriver) Init() bool       { return true }
func (d *stubDriver) RootPath() string { return "/" }

func (d *stubDriver) Open(path string, mode sdfs.Mode) (sdfs.FileObject, sdfs.Result) {
	return nil, sdfs.ResDenied
}

func (d *stubDriver) OpenDir(path string) (sdfs.DirObject, sdfs.Result) {
	if res, ok := d.fail[path]; ok {
		return nil, res
	}
	entries, ok := d.dirs[path]
	if !ok {
		return nil, sdfs.ResNoPath
	}
	dir := &stubDir{entries: entries}
	d.opened[path] = dir
	return dir, sdfs.ResOK
}

func (d *stubDriver) Stat(path string) (sdfs.FileInfo, sdfs.Result) {
	if _, ok := d.dirs[path]; ok {
		return sdfs.FileInfo{Name: path, Attr: sdfs.AttrDirectory}, sdfs.ResOK
	}
	return sdfs.FileInfo{}, sdfs.ResNoFile
}

func (d *stubDriver) Mkdir(path string) sdfs.Result  { return sdfs.ResDenied }
func (d *stubDriver) Unlink(path string) sdfs.Result { return sdfs.ResDenied }

type stubDir struct {
	entries []sdfs.FileInfo
	next    int
	closed  bool
}

func (d *stubDir) Read() (sdfs.FileInfo, sdfs.Result) {
	if d.closed {
		return sdfs.FileInfo{}, sdfs.ResInvalidObject
	}
	if d.next >= len(d.entries) {
		return sdfs.FileInfo{}, sdfs.ResOK
	}
	info := d.entries[d.next]
	d.next++
	return info, sdfs.ResOK
}

func (d *stubDir) Close() sdfs.Result {
	d.closed = true
	return sdfs.ResOK
}

func fileEntry(name string, size uint32) sdfs.FileInfo {
	return sdfs.FileInfo{Name: name, Size: size}
}

func dirEntry(name string) sdfs.FileInfo {
	return sdfs.FileInfo{Name: name, Attr: sdfs.AttrDirectory}
}
