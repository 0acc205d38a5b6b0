package hexcalls

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const DefaultEncoding = "utf-8"

// SourceOptions controls how a source file is turned into text.
type SourceOptions struct {
	// Encoding is a WHATWG encoding label such as `utf-8` or
	// `windows-1252`. Empty means DefaultEncoding.
	Encoding string
}

// LookupEncoding
// Resolves an encoding label, returning its canonical name.
func LookupEncoding(label string) (encoding.Encoding, string, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return nil, "", fmt.Errorf("hexcalls: unknown encoding %q: %w",
			label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("hexcalls: unknown encoding %q: %w",
			label, err)
	}
	return enc, name, nil
}

// ReadSource
// Reads the whole file at path and decodes it to text. The file is opened
// read-only and closed before returning. Any failure to open, read or
// decode the file is a *FileAccessError.
func ReadSource(path string, opts SourceOptions) (*string, error) {
	enc, encName, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	raw, err := readSourceBytes(path)
	if err != nil {
		return nil, err
	}

	var text string
	if encName == DefaultEncoding {
		if !utf8.Valid(raw) {
			return nil, newFileAccessError("decode", path,
				fmt.Errorf("%w: invalid %s", ErrNotText, encName))
		}
		text = string(raw)
	} else {
		decoded, decodeErr := enc.NewDecoder().Bytes(raw)
		if decodeErr != nil {
			return nil, newFileAccessError("decode", path,
				fmt.Errorf("%w: %s: %v", ErrNotText, encName, decodeErr))
		}
		text = string(decoded)
	}
	return &text, nil
}

// ReadSourceSize
// Returns the size in bytes of the file at path.
func ReadSourceSize(path string) (uint64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, newFileAccessError("stat", path, err)
	}
	return uint64(stat.Size()), nil
}

func readSourceBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newFileAccessError("open", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, newFileAccessError("stat", path, err)
	}
	if stat.IsDir() {
		return nil, newFileAccessError("read", path,
			fmt.Errorf("is a directory"))
	}
	var raw []byte
	if !stat.Mode().IsRegular() {
		// Pipes and device or proc files report no usable size.
		raw, err = io.ReadAll(file)
	} else if stat.Size() == 0 {
		// Mapping a zero length file fails on most platforms.
		return []byte{}, nil
	} else {
		raw, err = readMmap(file)
	}
	if err != nil {
		return nil, newFileAccessError("read", path, err)
	}
	return raw, nil
}
