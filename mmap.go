//go:build !wasip1 && !js

package hexcalls

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// readMmap maps the file read-only and copies it out, so the mapping is
// released before returning.
func readMmap(file *os.File) (contents []byte, err error) {
	fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	if mmapErr != nil {
		return nil, mmapErr
	}
	defer func() {
		if unmapErr := fileMmap.Unmap(); unmapErr != nil && err == nil {
			err = unmapErr
		}
	}()
	contents = make([]byte, len(fileMmap))
	copy(contents, fileMmap)
	return contents, nil
}
