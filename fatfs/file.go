package fatfs

import (
	"io"

	"github.com/rstms/sdfs"
	"github.com/spf13/afero"
)

// fileObject adapts one open afero file to the sdfs.FileObject
// contract. End of file is not an error: Read reports ResOK with a
// short count.
type fileObject struct {
	fil afero.File
}

// ensure fileObject implements sdfs.FileObject
var _ sdfs.FileObject = (*fileObject)(nil)

func (f *fileObject) Read(buf []byte) (int, sdfs.Result) {
	n, err := f.fil.Read(buf)
	if err != nil && err != io.EOF {
		return n, sdfs.ResDiskErr
	}
	return n, sdfs.ResOK
}

func (f *fileObject) Write(buf []byte) (int, sdfs.Result) {
	n, err := f.fil.Write(buf)
	if err != nil {
		return n, sdfs.ResDiskErr
	}
	return n, sdfs.ResOK
}

func (f *fileObject) Seek(pos uint32) sdfs.Result {
	if _, err := f.fil.Seek(int64(pos), io.SeekStart); err != nil {
		return sdfs.ResDiskErr
	}
	return sdfs.ResOK
}

func (f *fileObject) Tell() uint32 {
	pos, err := f.fil.Seek(0, io.SeekCurrent)
	if err != nil || pos < 0 {
		return 0
	}
	return uint32(pos)
}

func (f *fileObject) Size() uint32 {
	fi, err := f.fil.Stat()
	if err != nil || fi.Size() < 0 {
		return 0
	}
	return uint32(fi.Size())
}

func (f *fileObject) Sync() sdfs.Result {
	if err := f.fil.Sync(); err != nil {
		return sdfs.ResDiskErr
	}
	return sdfs.ResOK
}

func (f *fileObject) Close() sdfs.Result {
	if err := f.fil.Close(); err != nil {
		return sdfs.ResDiskErr
	}
	return sdfs.ResOK
}
