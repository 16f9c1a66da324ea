package chess

// Move packs one move into the low 24 bits of a word, msb to lsb:
//
//	[23:22] special kind    [21:19] captured type   [18:16] promotion type
//	[15:14] priority        [13:7]  to square       [6:0]   from square
//
// Move categories are never stored separately: a move is a capture iff the
// captured field is non-empty, a promotion iff the promotion field is
// non-empty, and special iff the special field is non-zero. Encoding and
// decoding through these fields is lossless and needs no auxiliary state.
type Move uint32

// Priority is a 2-bit pre-computed sort key for move ordering. It carries
// no meaning about the move itself.
type Priority uint8

const (
	PriorityNormal Priority = iota
	PriorityKiller
	PriorityCapture
	PriorityHash
)

// SpecialMove tags the moves whose board effect cannot be read off the
// from/to squares alone.
type SpecialMove uint8

const (
	SpecialNone SpecialMove = iota
	SpecialEnPassant
	SpecialCastleKingside
	SpecialCastleQueenside
)

const (
	fromShift     = 0
	fromBits      = 7
	toShift       = 7
	toBits        = 7
	priorityShift = 14
	priorityBits  = 2
	promoShift    = 16
	promoBits     = 3
	captureShift  = 19
	captureBits   = 3
	specialShift  = 22
	specialBits   = 2
)

const (
	fromMask     = 1<<fromBits - 1
	toMask       = 1<<toBits - 1
	priorityMask = 1<<priorityBits - 1
	promoMask    = 1<<promoBits - 1
	captureMask  = 1<<captureBits - 1
	specialMask  = 1<<specialBits - 1
)

// NewMove encodes a quiet move at normal priority.
func NewMove(from, to Square) Move {
	return Move(from)<<fromShift | Move(to)<<toShift
}

// NewCapture encodes a capture of the given piece type, pre-ordered at
// capture priority.
func NewCapture(from, to Square, captured PieceType) Move {
	return NewMove(from, to) |
		Move(captured)<<captureShift |
		Move(PriorityCapture)<<priorityShift
}

// NewPromotion encodes a pawn promotion. Priority is left at normal;
// capturing promotions go through NewCapturePromotion.
func NewPromotion(from, to Square, promote PieceType) Move {
	return NewMove(from, to) | Move(promote)<<promoShift
}

// NewCapturePromotion encodes a promotion that also captures, pre-ordered
// at capture priority.
func NewCapturePromotion(from, to Square, captured, promote PieceType) Move {
	return NewCapture(from, to, captured) | Move(promote)<<promoShift
}

// NewSpecial encodes castling or en passant. En passant injects the
// captured pawn and capture priority here: the victim pawn does not stand
// on the destination square, so the capture could never be inferred from
// the board afterwards.
func NewSpecial(from, to Square, kind SpecialMove) Move {
	m := NewMove(from, to) | Move(kind)<<specialShift
	if kind == SpecialEnPassant {
		m |= Move(Pawn)<<captureShift | Move(PriorityCapture)<<priorityShift
	}
	return m
}

// From returns the source square.
func (m Move) From() Square { return Square(m >> fromShift & fromMask) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> toShift & toMask) }

// Captured returns the captured piece type, or TypeNone.
func (m Move) Captured() PieceType { return PieceType(m >> captureShift & captureMask) }

// Promotion returns the promotion piece type, or TypeNone.
func (m Move) Promotion() PieceType { return PieceType(m >> promoShift & promoMask) }

// Special returns the special-move kind, or SpecialNone.
func (m Move) Special() SpecialMove { return SpecialMove(m >> specialShift & specialMask) }

// Priority returns the ordering priority.
func (m Move) Priority() Priority { return Priority(m >> priorityShift & priorityMask) }

// WithPriority returns the move with only its priority bits rewritten;
// every other field is untouched.
func (m Move) WithPriority(p Priority) Move {
	m &^= priorityMask << priorityShift
	return m | Move(p)<<priorityShift
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool { return m.Captured() != TypeNone }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != TypeNone }

// IsSpecial reports whether the move is castling or en passant.
func (m Move) IsSpecial() bool { return m.Special() != SpecialNone }
