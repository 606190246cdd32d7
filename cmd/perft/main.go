package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
	"github.com/dylhunn/dragontoothmg"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check root move list against a reference generator")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	g, err := chess.NewGameFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if *verify {
		if err := verifyRootMoves(g, *fen); err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("root move list matches reference")
	}

	if *divide {
		div := g.PerftDivide(*depth)
		keys := make([]string, 0, len(div))
		var sum uint64
		for m, n := range div {
			keys = append(keys, m)
			sum += n
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, div[k])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := g.Perft(*depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, nodes, elapsed, nps)
}

// verifyRootMoves generates all legal moves in the position and compares the
// (from, to) square pairs against dragontoothmg's generator. The reference
// emits four moves per promotion, one per piece choice, so its list is
// de-duplicated by square pair before comparing.
func verifyRootMoves(g *chess.GameState, fen string) error {
	refBoard := dragontoothmg.ParseFen(fen)
	refSet := make(map[string]bool)
	for _, m := range refBoard.GenerateLegalMoves() {
		key := squareName(m.From()) + squareName(m.To())
		refSet[key] = true
	}

	ourSet := make(map[string]bool)
	for _, m := range g.LegalMoves() {
		ourSet[m.String()] = true
	}

	for k := range ourSet {
		if !refSet[k] {
			return fmt.Errorf("move %s generated but not in reference", k)
		}
	}
	for k := range refSet {
		if !ourSet[k] {
			return fmt.Errorf("reference move %s missing", k)
		}
	}
	return nil
}

// squareName converts dragontoothmg's 0..63 square index (a1 = 0) to
// algebraic notation.
func squareName(sq uint8) string {
	return string([]byte{'a' + sq%8, '1' + sq/8})
}
