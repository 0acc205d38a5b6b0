package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

// Valid
// Returns true if the token is exactly two hexadecimal digits.
func (token Token) Valid() bool {
	if len(token) != TokenSize {
		return false
	}
	return isHexDigit(token[0]) && isHexDigit(token[1])
}

// Opcode
// Returns the numeric value of the token.
func (token Token) Opcode() (byte, error) {
	if !token.Valid() {
		return 0, fmt.Errorf("invalid token %q: want %d hex digits",
			string(token), TokenSize)
	}
	value, err := strconv.ParseUint(string(token), 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(value), nil
}

// Fragment
// Returns the dispatch table entry for the token, `'4F': this.i4F, `.
func (token Token) Fragment() string {
	return "'" + string(token) + "': " +
		FragmentReceiver + "." + FragmentPrefix + string(token) + ", "
}

// String renders the tokens as a quoted list, `['4F', '0A']`.
func (tokens Tokens) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for idx, token := range tokens {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteString(string(token))
		sb.WriteByte('\'')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Fragments
// Concatenates the fragment of every token, in order, with no separator
// beyond the trailing space each fragment carries.
func (tokens Tokens) Fragments() string {
	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteString(token.Fragment())
	}
	return sb.String()
}

// Unique
// Returns a copy with repeated tokens removed, keeping the first
// occurrence. Tokens differing only in case are distinct, since they name
// distinct methods.
func (tokens Tokens) Unique() Tokens {
	seen := make(map[Token]struct{}, len(tokens))
	unique := make(Tokens, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}

// SortByOpcode
// Sorts the tokens in place by numeric value. Equal values keep their
// relative order. Invalid tokens sort after every valid one, ordered by
// their raw text.
func (tokens Tokens) SortByOpcode() {
	sort.SliceStable(tokens, func(i, j int) bool {
		left, leftErr := tokens[i].Opcode()
		right, rightErr := tokens[j].Opcode()
		switch {
		case leftErr != nil && rightErr != nil:
			return tokens[i] < tokens[j]
		case leftErr != nil:
			return false
		case rightErr != nil:
			return true
		}
		return left < right
	})
}
