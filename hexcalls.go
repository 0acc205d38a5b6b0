package hexcalls

import (
	"log"
	"regexp"

	lru "github.com/hashicorp/golang-lru"
	"github.com/wbrown/hexcalls/types"
)

const SCAN_LRU_SZ = 256

// HEXCALL_REGEX matches an opcode handler call, `i` followed by two hex
// digits and an opening paren. Only the digits are captured.
const HEXCALL_REGEX = `i([0-9A-Fa-f]{2})\(`
const REGEX_ERROR = "hexcalls: Fatal error compiling regular expression: %v"

var hexCallPat = mustCompile(HEXCALL_REGEX)

func mustCompile(expr string) *regexp.Regexp {
	pat, err := regexp.Compile(expr)
	if err != nil {
		log.Fatalf(REGEX_ERROR, err)
	}
	return pat
}

// ScanTokens
// Returns the hex digits of every non-overlapping `iXX(` in text, in the
// order they appear. Duplicates are kept. The result is never nil.
func ScanTokens(text string) types.Tokens {
	matches := hexCallPat.FindAllStringSubmatchIndex(text, -1)
	tokens := make(types.Tokens, 0, len(matches))
	for _, match := range matches {
		// match[2:4] is the capture group.
		tokens = append(tokens, types.Token(text[match[2]:match[3]]))
	}
	return tokens
}

// Scanner wraps ScanTokens with an ARC cache keyed by the scanned text.
// The counters are not synchronized; share a Scanner within one goroutine.
type Scanner struct {
	Cache     *lru.ARCCache
	LruHits   int
	LruMisses int
}

// NewScanner
// Returns a Scanner with an empty cache of SCAN_LRU_SZ entries.
func NewScanner() *Scanner {
	return NewScannerSize(SCAN_LRU_SZ)
}

// NewScannerSize
// Returns a Scanner whose cache holds up to size texts.
func NewScannerSize(size int) *Scanner {
	cache, err := lru.NewARC(size)
	if err != nil {
		log.Fatalf("hexcalls: could not create scan cache: %v", err)
	}
	return &Scanner{Cache: cache}
}

// Scan
// Same as ScanTokens, serving repeated texts from the cache. The returned
// slice is a copy and may be modified by the caller.
func (scanner *Scanner) Scan(text *string) types.Tokens {
	var tokens types.Tokens
	if lookup, ok := scanner.Cache.Get(*text); ok {
		scanner.LruHits++
		tokens = lookup.(types.Tokens)
	} else {
		scanner.LruMisses++
		tokens = ScanTokens(*text)
		scanner.Cache.Add(*text, tokens)
	}
	result := make(types.Tokens, len(tokens))
	copy(result, tokens)
	return result
}

// ScanFile
// Reads the file at path and returns its tokens.
func (scanner *Scanner) ScanFile(path string,
	opts SourceOptions) (types.Tokens, error) {
	text, err := ReadSource(path, opts)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(text), nil
}

// ScanFile
// Reads the file at path and returns its tokens, without caching.
func ScanFile(path string, opts SourceOptions) (types.Tokens, error) {
	text, err := ReadSource(path, opts)
	if err != nil {
		return nil, err
	}
	return ScanTokens(*text), nil
}
