package main

import (
	"fmt"
	"log"

	"github.com/daystram/arbiter/bench"
)

func perft(depth int, fen string, parallel, verbose bool) error {
	log.Printf("============ perft(%d): parallel=%v\n", depth, parallel)

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			fmt.Println(line)
		}
	}()

	_, err := bench.Perft(depth, fen, parallel, verbose, out)
	close(out)
	<-done
	return err
}
