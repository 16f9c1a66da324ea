package chess

import (
	"fmt"
	"strings"
)

// The grid is 16 files wide so that every off-board square carries an
// overflow bit. Only the 64 valid slots are ever read or written.
const boardSlots = 128

// Board is a full position snapshot on a 0x88 grid.
//
// Game-state fields are exported for the fen package and other
// collaborators. The piece grid and king tracker stay behind SetPiece so
// the tracker cannot drift from the grid.
type Board struct {
	squares [boardSlots]Piece
	kings   [numSides]Square

	SideToMove     Side
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  uint16
	FullmoveNumber uint16
}

// NewBoard returns an empty, cleared board.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear empties the grid and resets game state: White to move, no castling
// rights, no en passant target, halfmove clock 0, fullmove number 1.
func (b *Board) Clear() {
	*b = Board{
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
	b.kings = [numSides]Square{NoSquare, NoSquare}
}

// Reset sets up the standard starting position with full castling rights,
// equivalent to importing the starting FEN.
func (b *Board) Reset() {
	b.Clear()
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := uint8(0); file < 8; file++ {
		b.SetPiece(SquareAt(file, 0), NewPiece(White, backRank[file]))
		b.SetPiece(SquareAt(file, 1), NewPiece(White, Pawn))
		b.SetPiece(SquareAt(file, 6), NewPiece(Black, Pawn))
		b.SetPiece(SquareAt(file, 7), NewPiece(Black, backRank[file]))
	}
	b.Castling = CastleAll
}

// SetPiece writes a piece into a square's slot; PieceNone removes whatever
// stood there. Writes to invalid squares are silently ignored. Placing a
// king moves that colour's tracker to the square — with more than one king
// of a colour the tracker keeps the last square written.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	b.squares[sq] = p
	if p.Is(King) {
		b.kings[p.Colour().Side()] = sq
	}
}

// PieceAt returns the piece at sq, or PieceNone for empty or invalid
// squares. It never fails.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return PieceNone
	}
	return b.squares[sq]
}

// IsEmpty reports whether sq holds no piece. Invalid squares read as empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == PieceNone
}

// HasCastlingRights reports whether every right in mask is still available.
func (b *Board) HasCastlingRights(mask CastlingRights) bool {
	return b.Castling&mask == mask
}

// KingSquare returns the tracked square of side's king, or NoSquare if one
// has never been placed.
func (b *Board) KingSquare(side Side) Square {
	return b.kings[side]
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// String renders the position as ASCII, ranks 8 down to 1, followed by a
// one-line game-state summary.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.PieceAt(SquareAt(uint8(file), uint8(rank))).Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%v to move, castling %v, en passant %v, halfmove %d, fullmove %d",
		b.SideToMove.Colour(), b.Castling, b.EnPassant, b.HalfmoveClock, b.FullmoveNumber)
	return sb.String()
}
