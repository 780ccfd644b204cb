package dice

import (
	"crypto/rand"
	"math/big"
)

// cryptoSource draws from crypto/rand. It carries no state and cannot be seeded,
// so clash outcomes are not reproducible unless a caller injects its own Source.
type cryptoSource struct{}

// NewCryptoSource returns the default Source used outside of tests.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn returns a uniformly distributed int in [0, n).
//
// Precondition: n > 0. Panics if n <= 0 or if crypto/rand fails.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}
