package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
	"github.com/AdrianGev/UPenn-ESAP-Capstone/config"
	"github.com/AdrianGev/UPenn-ESAP-Capstone/engine"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	depth := flag.Int("depth", cfg.Engine.Depth, "Engine search depth in plies")
	seed := flag.Int64("seed", cfg.Engine.Seed, "Engine random seed (0 seeds from the clock)")
	fen := flag.String("fen", chess.FENStartPos, "Starting position")
	flag.Parse()

	g, err := chess.NewGameFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var s *engine.Searcher
	if *seed != 0 {
		s = engine.NewSeededSearcher(*depth, *seed)
	} else {
		s = engine.NewSearcher(*depth)
	}

	if cfg.ShowBoard {
		fmt.Print(g.BoardString())
	}
	fmt.Println("Type \"help\" for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", g.SideToMove())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "move":
			if len(fields) < 2 {
				fmt.Println("usage: move e2e4")
				continue
			}
			m, err := g.ParseMove(fields[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			if !g.IsLegal(m) {
				fmt.Printf("illegal move: %s\n", fields[1])
				continue
			}
			playMove(g, m, cfg.ShowBoard)

		case "go":
			m, ok := s.BestMove(g)
			if !ok {
				fmt.Println("no legal moves")
				continue
			}
			fmt.Printf("engine plays %s (%d nodes)\n", m, s.Nodes())
			playMove(g, m, cfg.ShowBoard)

		case "undo":
			if !g.UndoMove() {
				fmt.Println("nothing to undo")
				continue
			}
			if cfg.ShowBoard {
				fmt.Print(g.BoardString())
			}

		case "board":
			fmt.Print(g.BoardString())

		case "fen":
			fmt.Println(g.ToFEN())

		case "legal":
			moves := g.LegalMoves()
			strs := make([]string, len(moves))
			for i, m := range moves {
				strs[i] = m.String()
			}
			fmt.Println(strings.Join(strs, " "))

		case "history":
			for i, m := range g.MoveHistory() {
				if i%2 == 0 {
					fmt.Printf("%d. %s", i/2+1, m)
				} else {
					fmt.Printf(" %s\n", m)
				}
			}
			if g.MoveCount()%2 == 1 {
				fmt.Println()
			}

		case "new":
			g = chess.NewGame()
			if cfg.ShowBoard {
				fmt.Print(g.BoardString())
			}

		case "help":
			fmt.Println("commands: move <e2e4>, go, undo, board, fen, legal, history, new, quit")

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q (try \"help\")\n", fields[0])
		}
	}
}

func playMove(g *chess.GameState, m chess.Move, showBoard bool) {
	g.MakeMove(m)
	if showBoard {
		fmt.Print(g.BoardString())
	}
	if st := g.Status(); st != chess.StatusOngoing {
		fmt.Println(st)
	}
}
