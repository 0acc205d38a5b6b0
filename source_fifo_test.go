//go:build linux || darwin

package hexcalls

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wbrown/hexcalls/types"
)

func TestScanFileNamedPipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.fifo")
	if err := syscall.Mkfifo(path, 0600); err != nil {
		t.Skipf("Could not create fifo `%s`: %v", path, err)
	}

	writeErr := make(chan error, 1)
	go func() {
		// Opening for write blocks until the reader opens the pipe.
		pipe, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			writeErr <- err
			return
		}
		_, err = pipe.WriteString("foo i4F( bar\nprivate i0a() {}\n")
		if closeErr := pipe.Close(); err == nil {
			err = closeErr
		}
		writeErr <- err
	}()

	tokens, err := ScanFile(path, SourceOptions{})
	assert.NoError(t, err)
	assert.Equal(t, types.Tokens{"4F", "0a"}, tokens)
	assert.NoError(t, <-writeErr)
}
