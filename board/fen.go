package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/arbiter/position"
)

// UnmarshalFEN replaces the position held by b, resetting its history.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var nb Board
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for i, row := range rows {
		y := Height - position.Pos(i) - 1
		x := position.Pos(0)
		for _, cell := range row {
			if cell != '0' && unicode.IsDigit(cell) {
				x += position.Pos(cell - '0')
				if x > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				continue
			}
			s, p := NewPieceFromSymbol(cell)
			if p == PieceUnknown {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x >= Width {
				return fmt.Errorf("%w: too many cells", ErrInvalidFEN)
			}
			if p == PiecePawn && (y == position.Rank1 || y == position.Rank8) {
				return fmt.Errorf("%w: pawn on back rank", ErrInvalidFEN)
			}
			nb.set(s, p, y*Width+x)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	for _, s := range Sides {
		if nb.GetBitmap(s, PieceKing).BitCount() != 1 {
			return fmt.Errorf("%w: %s must have exactly one king", ErrInvalidFEN, s)
		}
	}

	switch segments[1] {
	case "w":
		nb.turn = SideWhite
	case "b":
		nb.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 || len(segments[2]) == 0 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			var d CastleDirection
			switch e {
			case 'K':
				d = CastleDirectionWhiteKingside
			case 'Q':
				d = CastleDirectionWhiteQueenside
			case 'k':
				d = CastleDirectionBlackKingside
			case 'q':
				d = CastleDirectionBlackQueenside
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
			if nb.castleRights.IsAllowed(d) {
				return fmt.Errorf("%w: duplicate castling rights", ErrInvalidFEN)
			}
			nb.castleRights.Set(d, true)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		// the pawn that just double pushed stands right past the target
		wantRank := position.Rank6
		if nb.turn == SideBlack {
			wantRank = position.Rank3
		}
		if pos.Y() != wantRank || nb.occupied.Has(pos) || !nb.GetBitmap(nb.turn.Opposite(), PiecePawn).Has(pos-nb.turn.Forward()) {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		nb.enPassant = maskCell[pos]
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	nb.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullMoveClock == 0 {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	nb.fullMoveClock = uint16(fullMoveClock)

	if nb.InCheck(nb.turn.Opposite()) {
		return fmt.Errorf("%w: %s to move can capture the king", ErrInvalidFEN, nb.turn)
	}

	nb.history = append(make([]uint64, 0, 128), nb.Hash())
	*b = nb
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(y*Width + x)
			if p == PieceUnknown {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if b.enPassant == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.LS1B().Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}

// FEN returns the Forsyth-Edwards Notation of the current position.
func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}
