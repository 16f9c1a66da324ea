package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.SideToMove != SideWhite {
			t.Errorf("SideToMove = %v; want SideWhite", b.SideToMove)
		}
		if b.Castling != CastleNone {
			t.Errorf("Castling = %v; want none", b.Castling)
		}
		if b.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", b.EnPassant)
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.FullmoveNumber != 1 {
			t.Errorf("FullmoveNumber = %d; want 1", b.FullmoveNumber)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for file := uint8(0); file < 8; file++ {
			for rank := uint8(0); rank < 8; rank++ {
				if sq := SquareAt(file, rank); !b.IsEmpty(sq) {
					t.Errorf("square %v not empty on a new board", sq)
				}
			}
		}
	})
}

func TestClear(t *testing.T) {
	b := NewBoard()
	b.SetPiece(SquareAt(4, 3), NewPiece(White, Queen))
	b.SideToMove = SideBlack
	b.Castling = CastleAll
	b.EnPassant = SquareAt(4, 5)
	b.HalfmoveClock = 12
	b.FullmoveNumber = 40

	b.Clear()

	if !b.IsEmpty(SquareAt(4, 3)) {
		t.Error("Clear left a piece on the board")
	}
	if b.SideToMove != SideWhite || b.Castling != CastleNone || b.EnPassant != NoSquare {
		t.Error("Clear did not reset game state")
	}
	if b.HalfmoveClock != 0 || b.FullmoveNumber != 1 {
		t.Errorf("Clear counters = %d/%d; want 0/1", b.HalfmoveClock, b.FullmoveNumber)
	}
}

func TestReset(t *testing.T) {
	b := NewBoard()
	b.Reset()

	tests := []struct {
		sq   Square
		want Piece
	}{
		{SquareAt(0, 0), NewPiece(White, Rook)},
		{SquareAt(4, 0), NewPiece(White, King)},
		{SquareAt(3, 0), NewPiece(White, Queen)},
		{SquareAt(4, 1), NewPiece(White, Pawn)},
		{SquareAt(4, 3), PieceNone},
		{SquareAt(4, 6), NewPiece(Black, Pawn)},
		{SquareAt(4, 7), NewPiece(Black, King)},
		{SquareAt(7, 7), NewPiece(Black, Rook)},
	}
	for _, tt := range tests {
		if got := b.PieceAt(tt.sq); got != tt.want {
			t.Errorf("PieceAt(%v) = %#02x; want %#02x", tt.sq, uint8(got), uint8(tt.want))
		}
	}

	if !b.HasCastlingRights(CastleAll) {
		t.Error("Reset did not grant all castling rights")
	}
	if b.SideToMove != SideWhite || b.EnPassant != NoSquare {
		t.Error("Reset game state wrong")
	}
	if b.KingSquare(SideWhite) != SquareAt(4, 0) || b.KingSquare(SideBlack) != SquareAt(4, 7) {
		t.Errorf("king trackers = %v/%v; want e1/e8", b.KingSquare(SideWhite), b.KingSquare(SideBlack))
	}
}

func TestSetPiece(t *testing.T) {
	t.Run("place and remove", func(t *testing.T) {
		b := NewBoard()
		e4 := SquareAt(4, 3)
		pawn := NewPiece(White, Pawn)

		b.SetPiece(e4, pawn)
		if got := b.PieceAt(e4); got != pawn {
			t.Errorf("PieceAt(e4) = %#02x; want white pawn", uint8(got))
		}
		if b.IsEmpty(e4) {
			t.Error("IsEmpty(e4) = true after placing a pawn")
		}

		b.SetPiece(e4, PieceNone)
		if !b.IsEmpty(e4) {
			t.Error("IsEmpty(e4) = false after removal")
		}
	})

	t.Run("invalid square ignored", func(t *testing.T) {
		b := NewBoard()
		bad := SquareAt(8, 0)
		b.SetPiece(bad, NewPiece(White, Queen))
		if got := b.PieceAt(bad); got != PieceNone {
			t.Errorf("PieceAt(invalid) = %#02x; want PieceNone", uint8(got))
		}
		if !b.IsEmpty(bad) {
			t.Error("invalid square must always read as empty")
		}
		if !b.IsEmpty(NoSquare) {
			t.Error("NoSquare must always read as empty")
		}
	})

	t.Run("king tracking", func(t *testing.T) {
		b := NewBoard()
		e1 := SquareAt(4, 0)
		b.SetPiece(e1, NewPiece(White, King))
		if got := b.KingSquare(SideWhite); got != e1 {
			t.Errorf("white king tracker = %v; want e1", got)
		}

		d8 := SquareAt(3, 7)
		b.SetPiece(d8, NewPiece(Black, King))
		if got := b.KingSquare(SideBlack); got != d8 {
			t.Errorf("black king tracker = %v; want d8", got)
		}
		// Other colour's tracker untouched.
		if got := b.KingSquare(SideWhite); got != e1 {
			t.Errorf("white king tracker moved to %v after black king placement", got)
		}
	})

	t.Run("duplicate king keeps last write", func(t *testing.T) {
		b := NewBoard()
		first := SquareAt(4, 0)
		second := SquareAt(0, 0)
		king := NewPiece(White, King)
		b.SetPiece(first, king)
		b.SetPiece(second, king)
		if got := b.KingSquare(SideWhite); got != second {
			t.Errorf("king tracker = %v; want last-written %v", got, second)
		}
	})
}

func TestHasCastlingRights(t *testing.T) {
	b := NewBoard()
	b.Castling = CastleWhiteKingside | CastleWhiteQueenside

	// AND-equality: every requested bit must be present, not just one.
	if !b.HasCastlingRights(CastleWhiteKingside) {
		t.Error("single held right not reported")
	}
	if !b.HasCastlingRights(CastleWhiteKingside | CastleWhiteQueenside) {
		t.Error("combined held rights not reported")
	}
	if b.HasCastlingRights(CastleWhiteKingside | CastleBlackKingside) {
		t.Error("mask with a missing bit reported as held")
	}
	if !b.HasCastlingRights(CastleNone) {
		t.Error("empty mask must always be held")
	}
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	b.Reset()
	c := b.Copy()

	c.SetPiece(SquareAt(4, 3), NewPiece(White, Pawn))
	c.SideToMove = SideBlack

	if !b.IsEmpty(SquareAt(4, 3)) {
		t.Error("mutating the copy changed the original grid")
	}
	if b.SideToMove != SideWhite {
		t.Error("mutating the copy changed the original state")
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.Reset()
	s := b.String()

	if !strings.Contains(s, "r n b q k b n r") {
		t.Errorf("String() missing black back rank:\n%s", s)
	}
	if !strings.Contains(s, "a b c d e f g h") {
		t.Errorf("String() missing file legend:\n%s", s)
	}
	if !strings.Contains(s, "White to move") || !strings.Contains(s, "castling KQkq") {
		t.Errorf("String() missing state summary:\n%s", s)
	}
}
