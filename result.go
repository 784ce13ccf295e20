package sdfs

// Result is the status code returned by every Driver primitive. The
// code space follows the FAT driver convention: zero is success, each
// failure category has its own code.
type Result int

const (
	ResOK Result = iota
	ResDiskErr
	ResNotReady
	ResNoFile
	ResNoPath
	ResInvalidName
	ResDenied
	ResExist
	ResInvalidObject
	ResWriteProtected
	ResNotEnoughCore
	ResTooManyOpenFiles
	ResInvalidParameter
)

var resultNames = map[Result]string{
	ResOK:               "ok",
	ResDiskErr:          "disk error",
	ResNotReady:         "not ready",
	ResNoFile:           "no file",
	ResNoPath:           "no path",
	ResInvalidName:      "invalid name",
	ResDenied:           "denied",
	ResExist:            "exists",
	ResInvalidObject:    "invalid object",
	ResWriteProtected:   "write protected",
	ResNotEnoughCore:    "out of memory",
	ResTooManyOpenFiles: "too many open files",
	ResInvalidParameter: "invalid parameter",
}

func (r Result) String() string {
	name, ok := resultNames[r]
	if !ok {
		return "unknown"
	}
	return name
}

func (r Result) OK() bool {
	return r == ResOK
}
