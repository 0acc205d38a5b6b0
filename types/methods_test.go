package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenValid(t *testing.T) {
	for _, token := range []Token{"00", "4F", "a9", "Ff"} {
		assert.True(t, token.Valid(), string(token))
	}
	for _, token := range []Token{"", "0", "000", "ZZ", "g0", "4 "} {
		assert.False(t, token.Valid(), string(token))
	}
}

func TestTokenOpcode(t *testing.T) {
	opcode, err := Token("4F").Opcode()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x4f), opcode)

	opcode, err = Token("ff").Opcode()
	assert.NoError(t, err)
	assert.Equal(t, byte(0xff), opcode)

	_, err = Token("ZZ").Opcode()
	assert.Error(t, err)
}

func TestTokenFragment(t *testing.T) {
	assert.Equal(t, "'4F': this.i4F, ", Token("4F").Fragment())
	assert.Equal(t, "'0a': this.i0a, ", Token("0a").Fragment())
}

func TestTokensString(t *testing.T) {
	assert.Equal(t, "[]", Tokens{}.String())
	assert.Equal(t, "[]", Tokens(nil).String())
	assert.Equal(t, "['4F']", Tokens{"4F"}.String())
	assert.Equal(t, "['00', '0A']", Tokens{"00", "0A"}.String())
}

func TestTokensFragments(t *testing.T) {
	assert.Equal(t, "", Tokens{}.Fragments())
	assert.Equal(t, "'00': this.i00, '0A': this.i0A, ",
		Tokens{"00", "0A"}.Fragments())
}

func TestTokensUnique(t *testing.T) {
	tokens := Tokens{"01", "00", "01", "a9", "A9", "00"}
	assert.Equal(t, Tokens{"01", "00", "a9", "A9"}, tokens.Unique())
	// The receiver is left untouched.
	assert.Len(t, tokens, 6)
}

func TestTokensSortByOpcode(t *testing.T) {
	tokens := Tokens{"ff", "0A", "a9", "01", "A9", "0a"}
	tokens.SortByOpcode()
	assert.Equal(t, Tokens{"01", "0A", "0a", "a9", "A9", "ff"}, tokens)
}

func TestTokensSortByOpcodeInvalid(t *testing.T) {
	tokens := Tokens{"ZZ", "ff", "", "00", "g1"}
	tokens.SortByOpcode()
	assert.Equal(t, Tokens{"00", "ff", "", "ZZ", "g1"}, tokens)
}
