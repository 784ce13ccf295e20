package sdfs

// DetectNone is passed to Card.Init when no hardware detect signal is
// wired; the card is assumed present.
const DetectNone uint32 = 0xFFFFFFFF

// A Card is the media layer beneath a filesystem driver. Init brings up
// the media using an optional detect signal identifier and reports
// whether a card is present and usable.
type Card interface {
	Init(detect uint32) bool
}

// Mode flags for opening a file. Read and Write are independently
// meaningful; the create flags control behavior when the path does not
// already exist.
type Mode uint8

const (
	ModeRead         Mode = 0x01
	ModeWrite        Mode = 0x02
	ModeCreateNew    Mode = 0x04
	ModeCreateAlways Mode = 0x08
	ModeOpenAlways   Mode = 0x10
	ModeAppend       Mode = 0x30
)

const (
	FileRead  = ModeRead
	FileWrite = ModeRead | ModeWrite
)

// A Driver provides primitive path-based access to one mounted
// filesystem. Every operation returns a Result; data-returning
// operations pair it with the data.
type Driver interface {
	// Init mounts the filesystem. No other method may be called
	// before Init returns true.
	Init() bool

	// RootPath returns the path of the filesystem's top directory.
	RootPath() string

	Open(path string, mode Mode) (FileObject, Result)
	OpenDir(path string) (DirObject, Result)
	Stat(path string) (FileInfo, Result)
	Mkdir(path string) Result
	Unlink(path string) Result
}

// A FileObject is one open file within a Driver.
type FileObject interface {
	Read(buf []byte) (int, Result)
	Write(buf []byte) (int, Result)
	Seek(pos uint32) Result
	Tell() uint32
	Size() uint32
	Sync() Result
	Close() Result
}

// A DirObject is one open directory within a Driver. Read returns the
// next raw entry; exhaustion is signalled by ResOK with an empty Name.
type DirObject interface {
	Read() (FileInfo, Result)
	Close() Result
}
