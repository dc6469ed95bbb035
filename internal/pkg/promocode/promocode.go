// Package promocode generates the opaque claim codes handed to winners.
package promocode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet excludes visually ambiguous symbols (I, L, O, 0, 1) so codes
// survive being read aloud or retyped.
const Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const DefaultLength = 10

// Prefix marks codes issued by the spin flow so merchants can recognize
// them among other discount codes.
const Prefix = "SPIN-"

// Generate returns a code of n characters drawn uniformly from Alphabet
// using crypto/rand. With the 31-symbol alphabet, 10 characters give ~49
// bits of entropy, far beyond accidental collision over a campaign's life.
func Generate(n int) (string, error) {
	if n <= 0 {
		n = DefaultLength
	}

	max := big.NewInt(int64(len(Alphabet)))
	code := make([]byte, n)
	for i := range code {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("rand.Int -> %w", err)
		}
		code[i] = Alphabet[idx.Int64()]
	}

	return string(code), nil
}
