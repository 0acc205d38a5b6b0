package types

// Token is the two hex digits captured from a `iXX(` call site, with the
// case preserved as found in the source.
type Token string
type Tokens []Token

const (
	TokenSize = 2
)

// Fragment layout for a single token, e.g. `'4F': this.i4F, `.
const (
	FragmentReceiver = "this"
	FragmentPrefix   = "i"
)
