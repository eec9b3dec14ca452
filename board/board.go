package board

import (
	"errors"

	"github.com/daystram/arbiter/position"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game over")

	// ErrNoKing marks a broken board invariant. It is raised by panic.
	ErrNoKing = errors.New("king not found")
)

// Board is a chess position with its history. Bitmaps use little-endian
// rank-file (LERF) mapping.
//
// A Board must not be mutated concurrently. Read-only queries may run
// concurrently against a board that is not being mutated.
type Board struct {
	// grid data
	sides    [2 + 1]bitmap
	pieces   [6 + 1]bitmap
	occupied bitmap

	// meta
	enPassant     bitmap
	castleRights  CastleRights
	halfMoveClock uint16
	fullMoveClock uint16
	turn          Side

	// signatures of every position reached, the current one last
	history []uint64
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns the standard starting position unless configured otherwise.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the en passant target cell, valid for the next move only.
func (b *Board) EnPassant() (position.Pos, bool) {
	if b.enPassant == 0 {
		return 0, false
	}
	return b.enPassant.LS1B(), true
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// History returns a copy of the recorded position signatures, oldest first.
func (b *Board) History() []uint64 {
	h := make([]uint64, len(b.history))
	copy(h, b.history)
	return h
}

// Repetitions counts how many times the current position has occurred.
func (b *Board) Repetitions() int {
	if len(b.history) == 0 {
		return 0
	}
	current := b.history[len(b.history)-1]
	var n int
	for _, h := range b.history {
		if h == current {
			n++
		}
	}
	return n
}

func (b *Board) GetBitmap(s Side, p Piece) bitmap {
	return b.sides[s] & b.pieces[p]
}

// PieceAt returns the occupant of pos, or SideUnknown and PieceUnknown when
// the cell is empty.
func (b *Board) PieceAt(pos position.Pos) (Side, Piece) {
	cell := maskCell[pos]
	if b.occupied&cell == 0 {
		return SideUnknown, PieceUnknown
	}
	s := SideWhite
	if b.sides[SideBlack]&cell != 0 {
		s = SideBlack
	}
	for _, p := range Pieces {
		if b.pieces[p]&cell != 0 {
			return s, p
		}
	}
	return SideUnknown, PieceUnknown
}

// Squares lists the cells holding piece p of side s.
func (b *Board) Squares(s Side, p Piece) []position.Pos {
	return b.GetBitmap(s, p).Cells()
}

func (b *Board) set(s Side, p Piece, pos position.Pos) {
	b.sides[s].Set(pos)
	b.pieces[p].Set(pos)
	b.occupied.Set(pos)
}

func (b *Board) unset(s Side, p Piece, pos position.Pos) {
	b.sides[s].Unset(pos)
	b.pieces[p].Unset(pos)
	b.occupied.Unset(pos)
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	bb := *b
	bb.history = make([]uint64, len(b.history), max(cap(b.history), 128))
	copy(bb.history, b.history)
	return &bb
}
