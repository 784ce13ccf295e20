package sdfs

import (
	"strings"
	"time"
)

type Attr uint8

const (
	AttrReadOnly  Attr = 0x01
	AttrHidden         = 0x02
	AttrSystem         = 0x04
	AttrVolumeId       = 0x08
	AttrDirectory      = 0x10
	AttrArchive        = 0x20
)

// FileInfo is the metadata a Driver reports for one directory entry,
// from Stat or from reading an open DirObject.
type FileInfo struct {
	Name    string
	Size    uint32
	ModTime time.Time
	Attr    Attr
}

func (fi FileInfo) IsDir() bool {
	return fi.Attr&AttrDirectory == AttrDirectory
}

func (fi FileInfo) IsHidden() bool {
	return fi.Attr&AttrHidden == AttrHidden
}

func (fi FileInfo) IsVolumeId() bool {
	return fi.Attr&AttrVolumeId == AttrVolumeId
}

// IsDotEntry reports whether the entry is one of the conventional
// self/parent pseudo-entries or a hidden dot-file; enumeration skips
// these.
func (fi FileInfo) IsDotEntry() bool {
	return strings.HasPrefix(fi.Name, ".")
}
