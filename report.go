package hexcalls

import (
	"io"

	"github.com/wbrown/hexcalls/types"
)

// WriteReport
// Writes the token list on one line, then the dispatch table fragments
// for every token. The fragment run is terminated by a single newline and
// is omitted entirely when there are no tokens.
func WriteReport(w io.Writer, tokens types.Tokens) error {
	if _, err := io.WriteString(w, tokens.String()+"\n"); err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	for _, token := range tokens {
		if _, err := io.WriteString(w, token.Fragment()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
