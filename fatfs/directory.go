package fatfs

import (
	"github.com/rstms/sdfs"
)

// dirObject serves a snapshot of a directory's entries taken when the
// directory was opened, one per Read, in the backing filesystem's
// enumeration order.
type dirObject struct {
	entries []sdfs.FileInfo
	next    int
}

// ensure dirObject implements sdfs.DirObject
var _ sdfs.DirObject = (*dirObject)(nil)

func (d *dirObject) Read() (sdfs.FileInfo, sdfs.Result) {
	if d.entries == nil {
		return sdfs.FileInfo{}, sdfs.ResInvalidObject
	}
	if d.next >= len(d.entries) {
		// exhausted: ok with an empty name
		return sdfs.FileInfo{}, sdfs.ResOK
	}
	info := d.entries[d.next]
	d.next++
	return info, sdfs.ResOK
}

func (d *dirObject) Close() sdfs.Result {
	d.entries = nil
	d.next = 0
	return sdfs.ResOK
}
