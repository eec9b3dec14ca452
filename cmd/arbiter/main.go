package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/daystram/arbiter/board"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	movegenRun     = flag.Bool("movegen", false, "run movegen mode")
	movegenAttacks = flag.Bool("movegen.attacks", false, "dump attacked cells in movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "split perft root moves across goroutines")
	perftVerbose  = flag.Bool("perft.verbose", true, "print node counts per root move")

	playRun = flag.Bool("play", false, "run interactive play mode (default)")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

// realMain takes the FEN to start from as trailing arguments.
func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	switch {
	case *playRun:
		return play(os.Stdin, os.Stdout, fen)
	case *movegenRun:
		return movegen(os.Stdout, fen, *movegenAttacks)
	case *perftDepth > 0:
		return perft(*perftDepth, fen, *perftParallel, *perftVerbose)
	default:
		return play(os.Stdin, os.Stdout, fen)
	}
}
