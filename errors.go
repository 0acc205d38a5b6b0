package hexcalls

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotText is wrapped by a FileAccessError when the file's bytes do not
// decode in the requested encoding.
var ErrNotText = errors.New("not valid text")

// FileAccessError reports a source file that could not be opened, read or
// decoded.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("hexcalls: %s `%s`: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func newFileAccessError(op string, path string, err error) error {
	// The path is already carried by the FileAccessError.
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &FileAccessError{Path: path, Op: op, Err: err}
}
