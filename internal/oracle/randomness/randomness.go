// Package randomness supplies the pseudo-random index source used to assign
// oracle indexes and to pick the index of a status request.
package randomness

import (
	"math/big"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Source maps a seed to an index in [0, n). Implementations must be
// deterministic for a given seed unless documented otherwise.
type Source interface {
	Index(seed []byte, n uint8) uint8
}

// Keccak reduces the Keccak-256 digest of the seed modulo n.
type Keccak struct{}

func (Keccak) Index(seed []byte, n uint8) uint8 {
	if n == 0 {
		return 0
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(seed)
	digest := new(big.Int).SetBytes(h.Sum(nil))
	return uint8(digest.Mod(digest, big.NewInt(int64(n))).Uint64())
}

// Sequence replays fixed values in order, wrapping around, and ignores the
// seed. Values are reduced modulo n.
type Sequence struct {
	mu     sync.Mutex
	values []uint8
	next   int
}

func NewSequence(values ...uint8) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Index(_ []byte, n uint8) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 || n == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
