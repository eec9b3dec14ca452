package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/arbiter/position"
)

var (
	colorCellLight = color.New(color.FgBlack, color.BgHiGreen)
	colorCellDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel     = color.New(color.Bold)
)

// String renders the placement as eight lines of FEN symbols, rank 8 first,
// with '.' for empty cells.
func (b *Board) String() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(y*Width + x)
			sym := "."
			if p != PieceUnknown {
				sym = p.SymbolFEN(s)
			}
			_, _ = builder.WriteString(sym + " ")
		}
		if y > 0 {
			_, _ = builder.WriteRune('\n')
		}
	}
	return builder.String()
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(y*Width + x)
			sym := p.SymbolFEN(s)
			if p == PieceUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders a checkered board for terminals. Colors are dropped when
// color.NoColor is set.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(y*Width + x)
			sym := p.SymbolUnicode(s, false)
			if p == PieceUnknown {
				sym = " "
			}
			cell := colorCellDark
			if (x+y)%2 == 1 {
				cell = colorCellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// DumpAttacks renders every cell attacked by side s.
func (b *Board) DumpAttacks(s Side) string {
	return b.genAttackArea(s).Dump('x')
}

func (b *Board) DumpEnPassant() string {
	return b.enPassant.Dump()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncast: %s\nenps: %s\nhalf: %4d\nfull: %4d\nreps: %4d\nstat: %s",
		b.turn, b.castleRights, b.enPassantNotation(), b.halfMoveClock, b.fullMoveClock, b.Repetitions(), b.State())
}

func (b *Board) enPassantNotation() string {
	if pos, ok := b.EnPassant(); ok {
		return pos.Notation()
	}
	return "-"
}
