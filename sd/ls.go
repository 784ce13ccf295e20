package sd

import (
	"strconv"
	"time"

	"github.com/rstms/sdfs"
)

// Flags for Ls, independently combinable.
const (
	// LsDate prints each file's modification date and time.
	LsDate uint8 = 1
	// LsSize prints each file's size.
	LsSize uint8 = 2
	// LsRecurse descends into subdirectories.
	LsRecurse uint8 = 4
)

// maxLsIndent bounds recursion during a listing; directory depth is
// otherwise unbounded by this layer.
const maxLsIndent = 64

// Ls writes the directory's contents to sink in the driver's
// enumeration order, one entry per line, indented by indent spaces.
// LsDate and LsSize append the formatted modification date/time and
// size to file entries; LsRecurse descends into subdirectories with
// indent+2. A subdirectory that fails to open is reported inline and
// the walk continues with the next entry.
func (f *File) Ls(flags uint8, indent int, sink sdfs.Sink) {
	if f.dir == nil {
		return
	}
	for {
		info, res := f.dir.Read()
		if !res.OK() || info.Name == "" {
			break
		}
		if info.IsDotEntry() {
			continue
		}
		for i := 0; i < indent; i++ {
			sink.WriteChar(' ')
		}
		sink.WriteString(info.Name)

		if !info.IsDir() {
			if flags&LsDate != 0 {
				sink.WriteChar(' ')
				printDate(info.ModTime, sink)
				sink.WriteChar(' ')
				printTime(info.ModTime, sink)
			}
			if flags&LsSize != 0 {
				sink.WriteChar(' ')
				sink.WriteString(strconv.FormatUint(uint64(info.Size), 10))
			}
			sink.WriteLine()
			continue
		}

		if flags&LsRecurse == 0 || indent >= maxLsIndent {
			sink.WriteLine()
			continue
		}

		child := f.root.Open(joinPath(f.name, info.Name), sdfs.FileRead)
		if child.Valid() {
			sink.WriteLine()
			child.Ls(flags, indent+2, sink)
		} else {
			sink.WriteLine()
			sink.WriteString("error opening dir: ")
			sink.WriteString(info.Name)
			sink.WriteLine()
		}
		child.Close()
	}
}

// printDate writes t as yyyy-mm-dd.
func printDate(t time.Time, sink sdfs.Sink) {
	sink.WriteString(strconv.Itoa(t.Year()))
	sink.WriteChar('-')
	printTwoDigits(int(t.Month()), sink)
	sink.WriteChar('-')
	printTwoDigits(t.Day(), sink)
}

// printTime writes t as hh:mm:ss.
func printTime(t time.Time, sink sdfs.Sink) {
	printTwoDigits(t.Hour(), sink)
	sink.WriteChar(':')
	printTwoDigits(t.Minute(), sink)
	sink.WriteChar(':')
	printTwoDigits(t.Second(), sink)
}

// printTwoDigits writes v zero-padded, 0 <= v <= 99.
func printTwoDigits(v int, sink sdfs.Sink) {
	sink.WriteChar('0' + byte(v/10))
	sink.WriteChar('0' + byte(v%10))
}
