//go:build js || wasip1

package hexcalls

import (
	"io"
	"os"
)

func readMmap(file *os.File) ([]byte, error) {
	return io.ReadAll(file)
}
