package mino

import (
	"math/rand"
	"sync"
)

// Source draws piece kinds uniformly at random. Equal seeds produce
// equal sequences.
type Source struct {
	Seed int64

	randomizer *rand.Rand
	*sync.Mutex
}

func NewSource(seed int64) *Source {
	return &Source{Seed: seed, randomizer: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}
}

// Take returns a new piece at the spawn point.
func (s *Source) Take() *Piece {
	s.Lock()
	defer s.Unlock()

	return NewPiece(Kinds[s.randomizer.Intn(len(Kinds))], SpawnPoint)
}
