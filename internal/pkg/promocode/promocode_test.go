package promocode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(10)

	require.NoError(t, err)
	assert.Len(t, code, 10)
	for _, c := range code {
		assert.Truef(t, strings.ContainsRune(Alphabet, c), "unexpected symbol %q in code %q", c, code)
	}
}

func TestGenerate_DefaultsLength(t *testing.T) {
	code, err := Generate(0)

	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestGenerate_NoAmbiguousSymbols(t *testing.T) {
	for _, forbidden := range "ILO01" {
		assert.Falsef(t, strings.ContainsRune(Alphabet, forbidden), "alphabet must not contain %q", forbidden)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		code, err := Generate(DefaultLength)
		require.NoError(t, err)

		require.Falsef(t, seen[code], "duplicate code %q after %d draws", code, i)
		seen[code] = true
	}
}
