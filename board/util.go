package board

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/daystram/arbiter/position"
)

// bitmap is a set of cells, bit i standing for position.Pos(i).
type bitmap uint64

func reverse(bm bitmap) bitmap {
	return bitmap(bits.Reverse64(uint64(bm)))
}

func ShiftNW(bm bitmap) bitmap {
	return bm << 7
}

func ShiftN(bm bitmap) bitmap {
	return bm << 8
}

func ShiftNE(bm bitmap) bitmap {
	return bm << 9
}

func ShiftE(bm bitmap) bitmap {
	return bm << 1
}

func ShiftSE(bm bitmap) bitmap {
	return bm >> 7
}

func ShiftS(bm bitmap) bitmap {
	return bm >> 8
}

func ShiftSW(bm bitmap) bitmap {
	return bm >> 9
}

func ShiftW(bm bitmap) bitmap {
	return bm >> 1
}

func HitDiagonals(pos position.Pos, occupied bitmap) bitmap {
	return ScanHit(maskCell[pos], occupied, maskDia[pos]) | ScanHit(maskCell[pos], occupied, maskADia[pos])
}

func HitLaterals(pos position.Pos, occupied bitmap) bitmap {
	return ScanHit(maskCell[pos], occupied, maskCol[pos.X()]) | ScanHit(maskCell[pos], occupied, maskRow[pos.Y()])
}

// ScanHit uses o^(o-2*r) trick. The result covers every cell of mask reachable
// from cell, up to and including the first occupied one in each direction.
func ScanHit(cell, occupied, mask bitmap) bitmap {
	blocker := (occupied | cell) & mask
	return ((blocker - 2*cell) ^ reverse(reverse(blocker)-2*reverse(cell))) & mask
}

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm bitmap) Has(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

// LS1B returns the least significant set cell, or TotalCells when empty.
func (bm bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Cells lists the set cells in ascending order.
func (bm bitmap) Cells() []position.Pos {
	cells := make([]position.Pos, 0, bm.BitCount())
	for ; bm != 0; bm &= bm - 1 {
		cells = append(cells, bm.LS1B())
	}
	return cells
}

func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(Height); y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm&maskCell[(y-1)*Width+x] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
