package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Source draws uniformly distributed integers.
type Source interface {
	Draw(low, highInclusive int64) (int64, error)
}

// CryptoSource draws numbers from a cryptographically secure reader.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

// Draw returns a value in [low, highInclusive].
func (s *CryptoSource) Draw(low, highInclusive int64) (int64, error) {
	if highInclusive < low {
		return 0, fmt.Errorf("invalid range [%d, %d]", low, highInclusive)
	}
	span := new(big.Int).Sub(big.NewInt(highInclusive), big.NewInt(low))
	span.Add(span, big.NewInt(1))

	n, err := rand.Int(s.reader, span)
	if err != nil {
		return 0, fmt.Errorf("draw random number: %w", err)
	}
	return low + n.Int64(), nil
}
