// Package draw implements the weighted prize selection for a spin.
// Selection happens only on the trusted side; the randomness source is
// never derived from client input.
package draw

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/spintowin/spinwheel-api/internal/domain"
)

var ErrNoEligiblePrizes = errors.New("campaign has no prizes with positive weight")

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() (float64, error)
}

// CryptoSource draws from crypto/rand on every call. Stateless, safe for
// concurrent use.
type CryptoSource struct{}

func (CryptoSource) Float64() (float64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("rand.Read -> %w", err)
	}

	// 53 random bits, the mantissa width of a float64.
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53), nil
}

// Select picks one prize by cumulative weight in table order: draw a uniform
// value in [0, totalWeight) and return the first prize whose cumulative
// boundary exceeds it. Zero-weight prizes own an empty interval and are
// never selectable.
func Select(prizes []domain.Prize, src Source) (domain.Prize, error) {
	var total float64
	for i := range prizes {
		total += prizes[i].Weight
	}
	if total <= 0 {
		return domain.Prize{}, ErrNoEligiblePrizes
	}

	u, err := src.Float64()
	if err != nil {
		return domain.Prize{}, err
	}
	r := u * total

	var cumulative float64
	for i := range prizes {
		cumulative += prizes[i].Weight
		if r < cumulative {
			return prizes[i], nil
		}
	}

	// Float rounding can leave r equal to the final boundary; the last
	// positive-weight prize owns that edge.
	for i := len(prizes) - 1; i >= 0; i-- {
		if prizes[i].Weight > 0 {
			return prizes[i], nil
		}
	}

	return domain.Prize{}, ErrNoEligiblePrizes
}
