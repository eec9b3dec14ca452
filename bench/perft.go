package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/arbiter/board"
)

// Stats holds perft counters. Captures, en passants, castles, promotions and
// checks are counted on the moves that reach the leaf nodes.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) addAtomic(o Stats) {
	atomic.AddUint64(&s.Nodes, o.Nodes)
	atomic.AddUint64(&s.Captures, o.Captures)
	atomic.AddUint64(&s.EnPassants, o.EnPassants)
	atomic.AddUint64(&s.Castles, o.Castles)
	atomic.AddUint64(&s.Promotions, o.Promotions)
	atomic.AddUint64(&s.Checks, o.Checks)
}

// Perft walks the legal move tree of fen to depth. With verbose, one line
// per root move is sent to out before the summary line. out may be nil.
func Perft(depth int, fen string, parallel, verbose bool, out chan<- string) (Stats, error) {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return Stats{}, err
	}
	send := func(line string) {
		if out != nil {
			out <- line
		}
	}

	start := time.Now()
	st := divide(b, depth, parallel, func(mv board.Move, child Stats) {
		if verbose {
			send(fmt.Sprintf("%s: %d", mv, child.Nodes))
		}
	})
	elapsed := time.Since(start)

	send(message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, st.Nodes, int(float64(st.Nodes)/elapsed.Seconds()), st.Captures, st.EnPassants, st.Castles, st.Promotions, st.Checks, elapsed.Seconds()))

	return st, nil
}

// Count is the sequential perft of b. b is not modified.
func Count(b *board.Board, depth int) Stats {
	var st Stats
	count(b, depth, &st)
	return st
}

// divide splits the walk by root move. In parallel mode every root move runs
// on its own goroutine over a clone; b itself is only read.
func divide(b *board.Board, depth int, parallel bool, report func(board.Move, Stats)) Stats {
	if depth == 0 {
		return Count(b, 0)
	}

	var (
		total Stats
		mu    sync.Mutex
		wg    sync.WaitGroup
	)
	for _, mv := range b.GenerateMoves() {
		mv := mv
		run := func() {
			var child Stats
			bb := b.Clone()
			bb.MakeMove(mv)
			if depth == 1 {
				child.Nodes = 1
				countLeaf(b, bb, mv, &child)
			} else {
				count(bb, depth-1, &child)
			}
			total.addAtomic(child)

			mu.Lock()
			report(mv, child)
			mu.Unlock()
		}
		if !parallel {
			run()
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			run()
		}()
	}
	wg.Wait()
	return total
}

func count(b *board.Board, d int, st *Stats) {
	if d == 0 {
		st.Nodes++
		return
	}
	for _, mv := range b.GenerateMoves() {
		bb := b.Clone()
		bb.MakeMove(mv)
		if d == 1 {
			st.Nodes++
			countLeaf(b, bb, mv, st)
			continue
		}
		count(bb, d-1, st)
	}
}

// countLeaf records the features of mv, played from parent into child.
func countLeaf(parent, child *board.Board, mv board.Move, st *Stats) {
	if parent.IsCapture(mv) {
		st.Captures++
	}
	if mv.Kind == board.MoveKindEnPassant {
		st.EnPassants++
	}
	if mv.Kind.IsCastle() {
		st.Castles++
	}
	if mv.Promote != board.PieceUnknown {
		st.Promotions++
	}
	if child.InCheck(child.Turn()) {
		st.Checks++
	}
}
