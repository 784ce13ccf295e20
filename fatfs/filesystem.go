package fatfs

import (
	"os"
	gopath "path"
	"strings"

	"github.com/rstms/sdfs"
	"github.com/spf13/afero"
)

// FileSystem is an implementation of sdfs.Driver backed by an afero
// filesystem tree, presenting FAT-style result codes. It enforces the
// FAT driver's path semantics (no implicit parent creation, single
// removal primitive) even when the backing store is more permissive.
type FileSystem struct {
	fs      afero.Fs
	mounted bool
}

// ensure FileSystem implements sdfs.Driver
var _ sdfs.Driver = (*FileSystem)(nil)

// New returns a FileSystem over the supplied afero tree. The tree is
// not touched until Init mounts it.
func New(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

func (f *FileSystem) Init() bool {
	if f.fs == nil {
		return false
	}
	info, err := f.fs.Stat("/")
	if err != nil || !info.IsDir() {
		return false
	}
	f.mounted = true
	return true
}

func (f *FileSystem) RootPath() string {
	return "/"
}

func (f *FileSystem) Open(path string, mode sdfs.Mode) (sdfs.FileObject, sdfs.Result) {
	if !f.mounted {
		return nil, sdfs.ResNotReady
	}
	path = clean(path)
	if info, err := f.fs.Stat(path); err == nil && info.IsDir() {
		// a directory cannot be opened as a file
		return nil, sdfs.ResDenied
	}
	flag, res := openFlags(mode)
	if !res.OK() {
		return nil, res
	}
	if flag&os.O_CREATE != 0 {
		// the backing store may create missing parents on its own
		if res := f.requireParent(path); !res.OK() {
			return nil, res
		}
	}
	fil, err := f.fs.OpenFile(path, flag, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, f.missing(path)
		}
		return nil, mapError(err)
	}
	return &fileObject{fil: fil}, sdfs.ResOK
}

func (f *FileSystem) OpenDir(path string) (sdfs.DirObject, sdfs.Result) {
	if !f.mounted {
		return nil, sdfs.ResNotReady
	}
	path = clean(path)
	info, err := f.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, f.missing(path)
		}
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, sdfs.ResNoPath
	}
	dir, err := f.fs.Open(path)
	if err != nil {
		return nil, mapError(err)
	}
	infos, err := dir.Readdir(-1)
	dir.Close()
	if err != nil {
		return nil, sdfs.ResDiskErr
	}
	entries := make([]sdfs.FileInfo, 0, len(infos))
	for _, fi := range infos {
		entries = append(entries, entryInfo(fi))
	}
	return &dirObject{entries: entries}, sdfs.ResOK
}

func (f *FileSystem) Stat(path string) (sdfs.FileInfo, sdfs.Result) {
	if !f.mounted {
		return sdfs.FileInfo{}, sdfs.ResNotReady
	}
	path = clean(path)
	fi, err := f.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sdfs.FileInfo{}, f.missing(path)
		}
		return sdfs.FileInfo{}, mapError(err)
	}
	return entryInfo(fi), sdfs.ResOK
}

func (f *FileSystem) Mkdir(path string) sdfs.Result {
	if !f.mounted {
		return sdfs.ResNotReady
	}
	path = clean(path)
	if _, err := f.fs.Stat(path); err == nil {
		return sdfs.ResExist
	}
	if res := f.requireParent(path); !res.OK() {
		return res
	}
	if err := f.fs.Mkdir(path, 0755); err != nil {
		if os.IsExist(err) {
			return sdfs.ResExist
		}
		return mapError(err)
	}
	return sdfs.ResOK
}

func (f *FileSystem) Unlink(path string) sdfs.Result {
	if !f.mounted {
		return sdfs.ResNotReady
	}
	path = clean(path)
	if path == "/" {
		return sdfs.ResInvalidName
	}
	info, err := f.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f.missing(path)
		}
		return mapError(err)
	}
	if info.IsDir() {
		// only an empty directory can be unlinked
		dir, err := f.fs.Open(path)
		if err != nil {
			return mapError(err)
		}
		names, err := dir.Readdirnames(-1)
		dir.Close()
		if err != nil {
			return sdfs.ResDiskErr
		}
		if len(names) > 0 {
			return sdfs.ResDenied
		}
	}
	if err := f.fs.Remove(path); err != nil {
		return mapError(err)
	}
	return sdfs.ResOK
}

// requireParent fails with ResNoPath unless the parent directory of
// path exists.
func (f *FileSystem) requireParent(path string) sdfs.Result {
	parent := gopath.Dir(path)
	if parent == "/" {
		return sdfs.ResOK
	}
	info, err := f.fs.Stat(parent)
	if err != nil || !info.IsDir() {
		return sdfs.ResNoPath
	}
	return sdfs.ResOK
}

// missing distinguishes a missing entry from a missing parent, the way
// the FAT driver separates no-file from no-path.
func (f *FileSystem) missing(path string) sdfs.Result {
	if res := f.requireParent(path); !res.OK() {
		return res
	}
	return sdfs.ResNoFile
}

func clean(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return gopath.Clean(path)
}

func openFlags(mode sdfs.Mode) (int, sdfs.Result) {
	var flag int
	switch {
	case mode&sdfs.ModeRead != 0 && mode&sdfs.ModeWrite != 0:
		flag = os.O_RDWR
	case mode&sdfs.ModeWrite != 0:
		flag = os.O_WRONLY
	case mode&sdfs.ModeRead != 0:
		flag = os.O_RDONLY
	default:
		return 0, sdfs.ResInvalidParameter
	}
	switch {
	case mode&sdfs.ModeAppend == sdfs.ModeAppend:
		flag |= os.O_CREATE | os.O_APPEND
	case mode&sdfs.ModeCreateAlways != 0:
		flag |= os.O_CREATE | os.O_TRUNC
	case mode&sdfs.ModeCreateNew != 0:
		flag |= os.O_CREATE | os.O_EXCL
	case mode&sdfs.ModeOpenAlways != 0:
		flag |= os.O_CREATE
	}
	return flag, sdfs.ResOK
}

func mapError(err error) sdfs.Result {
	switch {
	case err == nil:
		return sdfs.ResOK
	case os.IsNotExist(err):
		return sdfs.ResNoFile
	case os.IsExist(err):
		return sdfs.ResExist
	case os.IsPermission(err):
		return sdfs.ResDenied
	default:
		return sdfs.ResDiskErr
	}
}

func entryInfo(fi os.FileInfo) sdfs.FileInfo {
	var attr sdfs.Attr
	if fi.IsDir() {
		attr |= sdfs.AttrDirectory
	}
	if strings.HasPrefix(fi.Name(), ".") {
		attr |= sdfs.AttrHidden
	}
	var size uint32
	if !fi.IsDir() && fi.Size() > 0 {
		size = uint32(fi.Size())
	}
	return sdfs.FileInfo{
		Name:    fi.Name(),
		Size:    size,
		ModTime: fi.ModTime(),
		Attr:    attr,
	}
}
