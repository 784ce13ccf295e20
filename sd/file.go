package sd

import (
	"strings"

	"github.com/rstms/sdfs"
)

// maxAvailable caps the byte count reported by Available to fit the
// small-integer "bytes ready" contract used by line-oriented callers.
const maxAvailable = 0x7FFF

// File is a handle on one open filesystem entry, backed by either an
// open file object or an open directory object, never both. A handle
// with no path and no backing resource is invalid; Root.Open returns
// such handles when a path resolves as neither file nor directory.
type File struct {
	root *Root
	name string
	fil  sdfs.FileObject
	dir  sdfs.DirObject
	res  sdfs.Result
}

// errorHandle returns an invalid handle carrying a terminal result code.
func errorHandle(res sdfs.Result) *File {
	return &File{res: res}
}

// Valid reports whether the handle is backed by an open file or
// directory object. The path may be empty while the handle is valid:
// a zero-length path resolves to the filesystem root and opens in
// directory mode.
func (f *File) Valid() bool {
	return f.fil != nil || f.dir != nil
}

// Result returns the driver code recorded by the most recent open or
// rewind on this handle, for diagnosing why it is invalid.
func (f *File) Result() sdfs.Result {
	return f.res
}

// FullName returns the full path the handle was opened with; it is ""
// after close, or when the handle was opened with the zero-length
// root path.
func (f *File) FullName() string {
	return f.name
}

// Name returns the final element of the handle's path.
func (f *File) Name() string {
	name := f.name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// ReadByte reads one byte, advancing the cursor; -1 when nothing could
// be read.
func (f *File) ReadByte() int {
	var b [1]byte
	if f.Read(b[:]) != 1 {
		return -1
	}
	return int(b[0])
}

// Read fills buf from the file and returns the number of bytes read,
// or -1 on driver error. 0 means end of file.
func (f *File) Read(buf []byte) int {
	if f.fil == nil {
		return -1
	}
	n, res := f.fil.Read(buf)
	if !res.OK() {
		return -1
	}
	return n
}

// ReadLine reads bytes into buf up through the first newline or until
// buf is full; -1 when nothing could be read.
func (f *File) ReadLine(buf []byte) int {
	n := 0
	for n < len(buf) {
		c := f.ReadByte()
		if c < 0 {
			break
		}
		buf[n] = byte(c)
		n++
		if c == '\n' {
			break
		}
	}
	if n == 0 {
		return -1
	}
	return n
}

// Write writes buf to the file and returns the count reported by the
// driver; 0 on failure.
func (f *File) Write(buf []byte) int {
	if f.fil == nil {
		return 0
	}
	n, _ := f.fil.Write(buf)
	return n
}

func (f *File) WriteByte(b byte) int {
	return f.Write([]byte{b})
}

func (f *File) WriteString(s string) int {
	return f.Write([]byte(s))
}

// Print writes a string to the file.
func (f *File) Print(s string) int {
	return f.WriteString(s)
}

// Println writes a string followed by a line terminator.
func (f *File) Println(s string) int {
	n := f.WriteString(s)
	return n + f.PrintLine()
}

// PrintLine writes a line terminator.
func (f *File) PrintLine() int {
	return f.WriteString("\r\n")
}

// Peek reads one byte then seeks back, leaving the cursor unchanged.
func (f *File) Peek() int {
	pos := f.Position()
	data := f.ReadByte()
	if data >= 0 {
		f.Seek(pos)
	}
	return data
}

// Seek moves the cursor to pos. Seeking past the end of the file fails
// with the cursor unmoved.
func (f *File) Seek(pos uint32) bool {
	if f.fil == nil {
		return false
	}
	if pos > f.Size() {
		return false
	}
	return f.fil.Seek(pos).OK()
}

// Rewind seeks back to the start of the file.
func (f *File) Rewind() bool {
	return f.Seek(0)
}

// Position returns the current cursor position.
func (f *File) Position() uint32 {
	if f.fil == nil {
		return 0
	}
	return f.fil.Tell()
}

// Size returns the file's size in bytes.
func (f *File) Size() uint32 {
	if f.fil == nil {
		return 0
	}
	return f.fil.Size()
}

// Available returns the number of bytes between the cursor and the end
// of the file, clamped to maxAvailable.
func (f *File) Available() int {
	n := f.Size() - f.Position()
	if n > maxAvailable {
		return maxAvailable
	}
	return int(n)
}

// Flush forces buffered writes out to the media.
func (f *File) Flush() {
	if f.fil != nil {
		f.fil.Sync()
	}
}

// Close releases the handle's backing resource, flushing file writes
// first, and invalidates the handle. An un-closed handle leaks its
// driver-side resource. Closing a closed handle is a no-op.
func (f *File) Close() {
	if f.fil != nil {
		f.fil.Sync()
		f.fil.Close()
		f.fil = nil
	}
	if f.dir != nil {
		f.dir.Close()
		f.dir = nil
	}
	f.name = ""
}
