package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
	"github.com/AdrianGev/UPenn-ESAP-Capstone/engine"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// result is one finished game: who won (or how it drew) and in how many plies.
type result struct {
	id     string
	status chess.Status
	winner string
	plies  int
}

func main() {
	games := flag.Int("games", 10, "Number of games to play")
	whiteDepth := flag.Int("white-depth", engine.DefaultDepth, "Search depth for the white engine")
	blackDepth := flag.Int("black-depth", engine.DefaultDepth, "Search depth for the black engine")
	maxPlies := flag.Int("max-plies", 400, "Abort a game after this many plies")
	workers := flag.Int("workers", 4, "Games played concurrently")
	flag.Parse()

	if *games < 1 {
		fmt.Fprintln(os.Stderr, "-games must be > 0")
		os.Exit(2)
	}
	if *workers < 1 {
		*workers = 1
	}

	jobs := make(chan int)
	results := make(chan result)

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				results <- playGame(*whiteDepth, *blackDepth, *maxPlies)
			}
		}()
	}
	go func() {
		for i := 0; i < *games; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	tally := make(map[string]int)
	for r := range results {
		fmt.Printf("%s  %-7s %-32s %d plies\n", r.id, r.winner, r.status, r.plies)
		tally[r.winner]++
	}

	fmt.Println()
	winners := make([]string, 0, len(tally))
	for w := range tally {
		winners = append(winners, w)
	}
	slices.Sort(winners)
	for _, w := range winners {
		fmt.Printf("%-7s %d\n", w, tally[w])
	}
}

// playGame runs one engine-vs-engine game on a fresh board and returns its
// outcome. Each side gets its own Searcher so the games are independent and
// safe to run in parallel.
func playGame(whiteDepth, blackDepth, maxPlies int) result {
	g := chess.NewGame()
	white := engine.NewSearcher(whiteDepth)
	black := engine.NewSearcher(blackDepth)

	for g.MoveCount() < maxPlies {
		s := white
		if g.SideToMove() == chess.Black {
			s = black
		}
		m, ok := s.BestMove(g)
		if !ok {
			break
		}
		g.MakeMove(m)
		if g.GameOver() {
			break
		}
	}

	st := g.Status()
	winner := "draw"
	switch {
	case st == chess.StatusCheckmate:
		// The mated side is the one to move.
		winner = g.SideToMove().Opposite().String()
	case st == chess.StatusOngoing:
		winner = "aborted"
	}

	return result{
		id:     uuid.NewString(),
		status: st,
		winner: winner,
		plies:  g.MoveCount(),
	}
}
