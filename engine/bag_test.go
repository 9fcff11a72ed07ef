package engine

import (
	"math/rand"
	"testing"
)

func TestBagPermutation(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(42)))

	// Every aligned window of 7 draws must contain each type exactly once
	for window := range 10 {
		seen := make(map[PieceType]int)
		for range 7 {
			seen[bag.Next()]++
		}
		if len(seen) != 7 {
			t.Fatalf("window %d: expected 7 distinct types, got %d", window, len(seen))
		}
		for typ, count := range seen {
			if count != 1 {
				t.Errorf("window %d: type %d drawn %d times", window, typ, count)
			}
		}
	}
}

func TestBagFrequency(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(7)))

	const draws = 10000
	counts := make(map[PieceType]int)
	for range draws {
		counts[bag.Next()]++
	}

	// Bag alignment bounds each count to within one full bag of draws/7
	expected := draws / 7
	for typ, count := range counts {
		if count < expected-7 || count > expected+7 {
			t.Errorf("type %d: count %d too far from expected %d", typ, count, expected)
		}
	}
}

func TestBagResetStartsFreshPermutation(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(3)))

	bag.Next()
	bag.Next()
	bag.reset()

	seen := make(map[PieceType]bool)
	for range 7 {
		seen[bag.Next()] = true
	}
	if len(seen) != 7 {
		t.Errorf("expected a full permutation after reset, got %d distinct types", len(seen))
	}
}
