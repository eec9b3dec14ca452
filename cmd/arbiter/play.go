package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/arbiter/board"
)

var colorError = color.New(color.FgRed)

// play reads one long algebraic move per line until the game ends or input
// runs out. "moves", "fen" and "quit" are recognized as commands.
func play(r io.Reader, w io.Writer, fen string) error {
	log.Println("============ play")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, b.Draw())
	scanner := bufio.NewScanner(r)
	for {
		st := b.State()
		if !st.IsRunning() {
			fmt.Fprintln(w, "game over:", describe(st))
			return nil
		}
		if st.IsCheck() {
			fmt.Fprintln(w, "check!")
		}
		fmt.Fprintf(w, "[%d] %s to move> ", b.FullMoveClock(), b.Turn())
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "fen":
			fmt.Fprintln(w, b.FEN())
			continue
		case "moves":
			dumpMoves(w, b)
			continue
		}

		if err := b.ApplyNotation(input); err != nil {
			var mvErr *board.MoveError
			switch {
			case errors.As(err, &mvErr):
				fmt.Fprintln(w, colorError.Sprintf("rejected: %s", mvErr.Reason))
			default:
				fmt.Fprintln(w, colorError.Sprint(err))
			}
			continue
		}
		fmt.Fprintln(w, b.Draw())
	}
}

func describe(st board.State) string {
	switch {
	case st.IsCheckmate():
		return fmt.Sprintf("checkmate, %s wins", st.Winner())
	case st == board.StateStalemate:
		return "stalemate"
	case st == board.StateRepetition:
		return "draw by threefold repetition"
	case st == board.StateSeventyFiveMove:
		return "draw by the 75-move rule"
	default:
		return st.String()
	}
}
