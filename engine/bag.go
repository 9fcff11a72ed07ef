package engine

import "math/rand"

// Bag is the 7-bag randomizer: each refill is a fresh permutation of
// all seven piece types, so no type can repeat within a bag.
type Bag struct {
	pieces []PieceType
	rng    *rand.Rand
}

// NewBag creates an empty bag drawing randomness from rng
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next draws the next piece type, refilling and reshuffling the bag
// when it runs out
func (b *Bag) Next() PieceType {
	if len(b.pieces) == 0 {
		b.fill()
	}
	t := b.pieces[len(b.pieces)-1]
	b.pieces = b.pieces[:len(b.pieces)-1]
	return t
}

// fill regenerates the bag as a Fisher-Yates permutation of all types
func (b *Bag) fill() {
	b.pieces = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}
	for i := len(b.pieces) - 1; i >= 1; i-- {
		j := b.rng.Intn(i + 1)
		b.pieces[i], b.pieces[j] = b.pieces[j], b.pieces[i]
	}
}

// reset discards any pending pieces so the next draw starts a new bag
func (b *Bag) reset() {
	b.pieces = b.pieces[:0]
}
