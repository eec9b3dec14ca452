package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/daystram/arbiter/board"
)

func movegen(w io.Writer, fen string, attacks bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "to move:", b.Turn())
	fmt.Fprintln(w, b.Dump())
	fmt.Fprintln(w, b.Draw())
	fmt.Fprintln(w, b.DebugString())
	dumpMoves(w, b)

	if attacks {
		for _, s := range board.Sides {
			fmt.Fprintf(w, "attacked by %s:\n%s\n", s, b.DumpAttacks(s))
		}
		if b.InCheck(b.Turn()) {
			fmt.Fprintln(w, "checkers:", b.Checkers(b.Turn()))
		}
	}
	return nil
}

func dumpMoves(w io.Writer, b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		s, p := b.PieceAt(mv.From)
		fmt.Fprintf(w, "option %*d: [%s] %s %s %s => %s (kind=%s) (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), s, p, mv.From, mv.To, mv.Kind, b.IsCapture(mv))
	}
}
