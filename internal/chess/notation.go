package chess

import (
	"fmt"

	errs "chesscore/internal/errors"
)

// Coordinate notation lengths: "e2e4" and "e7e8q".
const (
	moveStrMinLen = 4
	moveStrMaxLen = 5
)

func promoLetter(t PieceType) byte {
	switch t {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	}
	return 0
}

func promoType(c byte) PieceType {
	switch c {
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	}
	return TypeNone
}

// MoveString renders a move in coordinate notation: "e2e4", or "e7e8q"
// with a trailing lowercase letter when the promotion field is set. It
// fails if either square field decodes off the board, or if the promotion
// field holds a piece with no promotion letter.
func MoveString(m Move) (string, error) {
	from, to := m.From(), m.To()
	if !from.Valid() || !to.Valid() {
		return "", fmt.Errorf("move %#06x has off-board squares: %w", uint32(m), errs.ErrInvalidMove)
	}
	buf := make([]byte, 0, moveStrMaxLen)
	buf = append(buf, 'a'+from.File(), '1'+from.Rank(), 'a'+to.File(), '1'+to.Rank())
	if promo := m.Promotion(); promo != TypeNone {
		c := promoLetter(promo)
		if c == 0 {
			return "", fmt.Errorf("move %#06x promotes to %v: %w", uint32(m), promo, errs.ErrInvalidMove)
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

// ParseMove decodes 4- or 5-character coordinate notation against a
// reference position. The board supplies what the bare coordinates cannot:
// the captured piece on the destination, whether a two-file king step is a
// castle, and whether a pawn landing on the board's en passant target is an
// en passant capture. Chess legality is not checked beyond the promotion
// shape (a pawn reaching its back rank).
func ParseMove(s string, b *Board) (Move, error) {
	if len(s) < moveStrMinLen || len(s) > moveStrMaxLen {
		return 0, fmt.Errorf("move %q: length must be 4 or 5: %w", s, errs.ErrInvalidMove)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, fmt.Errorf("move %q: %w", s, err)
	}

	mover := b.PieceAt(from)
	if mover == PieceNone {
		return 0, fmt.Errorf("move %q: no piece on %v: %w", s, from, errs.ErrInvalidMove)
	}

	m := NewMove(from, to)
	captured := b.PieceAt(to).Type()
	if captured != TypeNone {
		m = NewCapture(from, to, captured)
	}

	if len(s) == moveStrMaxLen {
		promo := promoType(s[4])
		if promo == TypeNone {
			return 0, fmt.Errorf("move %q: bad promotion letter %q: %w", s, s[4], errs.ErrInvalidMove)
		}
		backRank := uint8(7)
		if mover.Colour() == Black {
			backRank = 0
		}
		if !mover.Is(Pawn) || to.Rank() != backRank {
			return 0, fmt.Errorf("move %q: promotion needs a pawn reaching its back rank: %w", s, errs.ErrInvalidMove)
		}
		if captured != TypeNone {
			m = NewCapturePromotion(from, to, captured, promo)
		} else {
			m = NewPromotion(from, to, promo)
		}
	}

	// Reclassify against board context: the coordinates alone cannot
	// express special-move intent.
	switch mover.Type() {
	case King:
		if d := int(to.File()) - int(from.File()); d == 2 || d == -2 {
			kind := SpecialCastleKingside
			if d < 0 {
				kind = SpecialCastleQueenside
			}
			m = NewSpecial(from, to, kind)
		}
	case Pawn:
		if to == b.EnPassant {
			m = NewSpecial(from, to, SpecialEnPassant)
		}
	}

	return m, nil
}
