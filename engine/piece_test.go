package engine

import (
	"testing"
)

func shapesEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestSpawnOffset(t *testing.T) {
	for _, typ := range []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		p := NewPiece(typ)
		if p.X != 3 || p.Y != 0 {
			t.Errorf("type %d: expected spawn at (3,0), got (%d,%d)", typ, p.X, p.Y)
		}
		if len(p.Blocks()) != 4 {
			t.Errorf("type %d: expected 4 occupied cells, got %d", typ, len(p.Blocks()))
		}
	}
}

func TestMatrixSizes(t *testing.T) {
	if size := len(NewPiece(PieceI).Shape); size != 4 {
		t.Errorf("expected I matrix size 4, got %d", size)
	}
	if size := len(NewPiece(PieceO).Shape); size != 2 {
		t.Errorf("expected O matrix size 2, got %d", size)
	}
	for _, typ := range []PieceType{PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		if size := len(NewPiece(typ).Shape); size != 3 {
			t.Errorf("type %d: expected matrix size 3, got %d", typ, size)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, typ := range []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		original := NewPiece(typ)

		cw := original
		ccw := original
		for range 4 {
			cw = cw.RotateCW()
			ccw = ccw.RotateCCW()
		}
		if !shapesEqual(cw.Shape, original.Shape) {
			t.Errorf("type %d: four clockwise rotations did not restore the shape", typ)
		}
		if !shapesEqual(ccw.Shape, original.Shape) {
			t.Errorf("type %d: four counter-clockwise rotations did not restore the shape", typ)
		}
	}
}

func TestRotateInversePairs(t *testing.T) {
	for _, typ := range []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		original := NewPiece(typ)

		if got := original.RotateCW().RotateCCW(); !shapesEqual(got.Shape, original.Shape) {
			t.Errorf("type %d: cw then ccw did not restore the shape", typ)
		}
		if got := original.RotateCCW().RotateCW(); !shapesEqual(got.Shape, original.Shape) {
			t.Errorf("type %d: ccw then cw did not restore the shape", typ)
		}
		if got := original.Rotate180().Rotate180(); !shapesEqual(got.Shape, original.Shape) {
			t.Errorf("type %d: two half turns did not restore the shape", typ)
		}
	}
}

func TestRotate180MatchesDoubleCW(t *testing.T) {
	for _, typ := range []PieceType{PieceI, PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		p := NewPiece(typ)
		if !shapesEqual(p.Rotate180().Shape, p.RotateCW().RotateCW().Shape) {
			t.Errorf("type %d: 180 rotation differs from two clockwise rotations", typ)
		}
	}
}

func TestRotationDoesNotMutateOriginal(t *testing.T) {
	p := NewPiece(PieceT)
	want := copyShape(p.Shape)
	_ = p.RotateCW()
	if !shapesEqual(p.Shape, want) {
		t.Error("RotateCW mutated the receiver's shape")
	}
}

func TestBlocksTranslation(t *testing.T) {
	p := NewPiece(PieceO)
	p.X, p.Y = 4, 7
	want := map[[2]int]bool{
		{4, 7}: true, {5, 7}: true,
		{4, 8}: true, {5, 8}: true,
	}
	blocks := p.Blocks()
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for _, b := range blocks {
		if !want[b] {
			t.Errorf("unexpected block at (%d,%d)", b[0], b[1])
		}
	}
}
