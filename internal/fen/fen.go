// Package fen converts between Board values and Forsyth-Edwards Notation.
//
// Parsing is a single pass over the six space-separated fields, strictly
// left to right with no backtracking: a cursor walks the input and the
// first violation sticks, turning every later step into a no-op. Fields
// already decoded are not rolled back — a failed Parse leaves the board
// partially populated, and callers must Clear or discard it.
package fen

import (
	"fmt"
	"strings"

	"chesscore/internal/chess"
	errs "chesscore/internal/errors"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// parser tracks the cursor into the input and the first error encountered.
// Once err is set every parsing step becomes a no-op that preserves it.
type parser struct {
	s   string
	pos int
	err error
}

func (p *parser) failed() bool { return p.err != nil }

// fail records the first violation with field context; later calls are
// ignored so the earliest error wins.
func (p *parser) fail(field, expected string) {
	if p.err != nil {
		return
	}
	got := "end of input"
	if p.pos < len(p.s) {
		got = fmt.Sprintf("%q", p.s[p.pos])
	}
	p.err = &errs.ParseError{
		Err:      errs.ErrInvalidFEN,
		Field:    field,
		Offset:   p.pos,
		Expected: expected,
		Got:      got,
	}
}

// peek returns the current byte; ok is false at end of input or after a
// failure.
func (p *parser) peek() (byte, bool) {
	if p.err != nil || p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *parser) next() { p.pos++ }

// expectSpace consumes the single space separating two fields.
func (p *parser) expectSpace() {
	c, ok := p.peek()
	if !ok || c != ' ' {
		p.fail("separator", "single space")
		return
	}
	p.next()
}

// Parse decodes a FEN string into b. The board is cleared first; on error
// it is left partially populated and should be cleared or discarded, never
// used as a position.
func Parse(b *chess.Board, s string) error {
	b.Clear()
	p := &parser{s: s}

	parsePlacement(b, p)
	p.expectSpace()
	parseSideToMove(b, p)
	p.expectSpace()
	parseCastling(b, p)
	p.expectSpace()
	parseEnPassant(b, p)
	p.expectSpace()
	b.HalfmoveClock = parseCounter(p, "halfmove clock")
	p.expectSpace()
	b.FullmoveNumber = parseCounter(p, "fullmove number")

	return p.err
}

// ParseNew decodes a FEN string into a fresh board. On error no board is
// returned, so a partially parsed position can never leak out.
func ParseNew(s string) (*chess.Board, error) {
	b := chess.NewBoard()
	if err := Parse(b, s); err != nil {
		return nil, err
	}
	return b, nil
}

// parsePlacement consumes the piece placement field: ranks 8 down to 1
// separated by '/', each a mix of piece letters and empty-square counts
// that must account for exactly 8 files.
func parsePlacement(b *chess.Board, p *parser) {
	if p.failed() {
		return
	}
	rank := 7
	file := 0
	for {
		c, ok := p.peek()
		if !ok || c == ' ' {
			break
		}
		switch {
		case c == '/':
			if file != 8 {
				p.fail("placement", "8 files before '/'")
				return
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			if file >= 8 || rank < 0 {
				p.fail("placement", "piece within the board")
				return
			}
			piece := chess.PieceFromChar(c)
			if piece == chess.PieceNone {
				p.fail("placement", "piece letter or empty count")
				return
			}
			b.SetPiece(chess.SquareAt(uint8(file), uint8(rank)), piece)
			file++
		}
		p.next()
	}
	if p.failed() {
		return
	}
	if rank != 0 || file != 8 {
		p.fail("placement", "8 ranks of 8 files")
	}
}

func parseSideToMove(b *chess.Board, p *parser) {
	c, ok := p.peek()
	if !ok {
		p.fail("side to move", "'w' or 'b'")
		return
	}
	switch c {
	case 'w':
		b.SideToMove = chess.SideWhite
	case 'b':
		b.SideToMove = chess.SideBlack
	default:
		p.fail("side to move", "'w' or 'b'")
		return
	}
	p.next()
}

func parseCastling(b *chess.Board, p *parser) {
	c, ok := p.peek()
	if !ok {
		p.fail("castling rights", "'-' or KQkq letters")
		return
	}
	if c == '-' {
		p.next()
		return
	}
	for {
		c, ok := p.peek()
		if !ok || c == ' ' {
			return
		}
		switch c {
		case 'K':
			b.Castling |= chess.CastleWhiteKingside
		case 'Q':
			b.Castling |= chess.CastleWhiteQueenside
		case 'k':
			b.Castling |= chess.CastleBlackKingside
		case 'q':
			b.Castling |= chess.CastleBlackQueenside
		default:
			p.fail("castling rights", "'-' or KQkq letters")
			return
		}
		p.next()
	}
}

func parseEnPassant(b *chess.Board, p *parser) {
	c, ok := p.peek()
	if !ok {
		p.fail("en passant", "'-' or target square")
		return
	}
	if c == '-' {
		b.EnPassant = chess.NoSquare
		p.next()
		return
	}
	if p.pos+1 >= len(p.s) {
		p.fail("en passant", "file and rank")
		return
	}
	file := p.s[p.pos] - 'a'
	rank := p.s[p.pos+1] - '1'
	if file >= 8 || rank >= 8 {
		p.fail("en passant", "square a1-h8")
		return
	}
	b.EnPassant = chess.SquareAt(file, rank)
	p.pos += 2
}

// parseCounter consumes a run of decimal digits; zero digits is a failure.
func parseCounter(p *parser, field string) uint16 {
	start := p.pos
	n := 0
	for {
		c, ok := p.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		p.next()
	}
	if p.failed() {
		return 0
	}
	if p.pos == start {
		p.fail(field, "decimal digits")
		return 0
	}
	return uint16(n)
}

// Write serialises the board into canonical FEN. Writing a board that
// Parse produced from well-formed input reproduces that input byte for
// byte.
func Write(b *chess.Board) string {
	var sb strings.Builder

	writePlacement(&sb, b)
	sb.WriteByte(' ')
	if b.SideToMove == chess.SideWhite {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", b.HalfmoveClock, b.FullmoveNumber)

	return sb.String()
}

// writePlacement emits ranks 8 down to 1 with run-length empty counts.
func writePlacement(sb *strings.Builder, b *chess.Board) {
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(chess.SquareAt(uint8(file), uint8(rank)))
			if piece == chess.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
