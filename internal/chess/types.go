// Package chess provides the core position-representation types: 0x88
// squares, combined colour+type piece bytes, the full board state, and the
// packed 24-bit move word.
package chess

import (
	"fmt"

	errs "chesscore/internal/errors"
)

// Square is a board square in 0x88 form.
//
// Layout: 0b0rrr_0fff — file in bits 0-2, rank in bits 4-6. Bits 3 and 7
// catch file or rank overflow during square arithmetic, so validity is a
// single mask test rather than a pair of range comparisons.
type Square uint8

// NoSquare marks the absence of a square, e.g. a cleared en passant target.
// Both overflow bits are set, so it never passes Valid.
const NoSquare Square = 0xFF

const (
	rankShift   = 4
	fileMask    = 0x07
	invalidMask = 0x88
)

// SquareAt builds a square from file and rank, both 0-7. Out-of-range
// inputs land on an overflow bit and produce an invalid square rather than
// wrapping back onto the board.
func SquareAt(file, rank uint8) Square {
	return Square(rank<<rankShift | file)
}

// Valid reports whether the square lies on the physical board.
func (s Square) Valid() bool { return s&invalidMask == 0 }

// File returns the file component, 0-7 for valid squares.
func (s Square) File() uint8 { return uint8(s) & fileMask }

// Rank returns the rank component, 0-7 for valid squares.
func (s Square) Rank() uint8 { return uint8(s) >> rankShift }

// String returns the algebraic form ("e4"), or "-" for squares off the
// board. The "-" form doubles as the FEN placeholder for a missing
// en passant target.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + s.File(), '1' + s.Rank()})
}

// ParseSquare converts algebraic notation ("e4") to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errs.ErrInvalidSquare)
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file >= 8 || rank >= 8 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errs.ErrInvalidSquare)
	}
	return SquareAt(file, rank), nil
}

// Colour is a piece colour, stored directly in the piece's high bit.
type Colour uint8

const (
	White Colour = 0x00
	Black Colour = 0x80
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Side indexes per-player state such as the king tracker.
type Side uint8

const (
	SideWhite Side = iota
	SideBlack
	numSides
)

// Side returns the tracker index for a colour.
func (c Colour) Side() Side {
	if c == Black {
		return SideBlack
	}
	return SideWhite
}

// Colour returns the piece colour for a side.
func (s Side) Colour() Colour {
	if s == SideBlack {
		return Black
	}
	return White
}

// PieceType enumerates piece kinds. TypeNone doubles as "empty": a piece
// whose type is TypeNone is no piece at all, whatever its colour bit says.
type PieceType uint8

const (
	TypeNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	numPieceTypes
)

// String returns the lowercase name of a piece type.
func (t PieceType) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Piece combines colour (bit 7) and type (bits 0-2) in one byte.
type Piece uint8

// PieceNone is the empty slot value.
const PieceNone Piece = 0

const (
	colourMask = 0x80
	typeMask   = 0x07
)

// NewPiece combines a colour and a type.
func NewPiece(c Colour, t PieceType) Piece {
	return Piece(uint8(c) | uint8(t))
}

// Type returns the piece's type.
func (p Piece) Type() PieceType { return PieceType(p & typeMask) }

// Colour returns the piece's colour.
func (p Piece) Colour() Colour { return Colour(p & colourMask) }

// Is reports whether the piece has the given type.
func (p Piece) Is(t PieceType) bool { return p.Type() == t }

// PieceFromChar maps a FEN letter to a piece; case selects colour
// (uppercase white, lowercase black). Unrecognised characters map to
// PieceNone.
func PieceFromChar(c byte) Piece {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var t PieceType
	switch c {
	case 'P':
		t = Pawn
	case 'N':
		t = Knight
	case 'B':
		t = Bishop
	case 'R':
		t = Rook
	case 'Q':
		t = Queen
	case 'K':
		t = King
	default:
		return PieceNone
	}
	return NewPiece(colour, t)
}

// Char returns the FEN letter for a piece, or '.' for an empty slot.
func (p Piece) Char() byte {
	var c byte
	switch p.Type() {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	default:
		return '.'
	}
	if p.Colour() == White {
		c -= 'a' - 'A'
	}
	return c
}

// CastlingRights is a bitfield of the four castling options, one bit per
// side and wing.
type CastlingRights uint8

const (
	CastleNone           CastlingRights = 0x00
	CastleWhiteKingside  CastlingRights = 0x01
	CastleWhiteQueenside CastlingRights = 0x02
	CastleBlackKingside  CastlingRights = 0x04
	CastleBlackQueenside CastlingRights = 0x08
	CastleAll            CastlingRights = 0x0F
)

// String returns the FEN form of the rights: letters in KQkq order, or "-"
// when none remain.
func (r CastlingRights) String() string {
	if r == CastleNone {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if r&CastleWhiteKingside != 0 {
		buf = append(buf, 'K')
	}
	if r&CastleWhiteQueenside != 0 {
		buf = append(buf, 'Q')
	}
	if r&CastleBlackKingside != 0 {
		buf = append(buf, 'k')
	}
	if r&CastleBlackQueenside != 0 {
		buf = append(buf, 'q')
	}
	return string(buf)
}
