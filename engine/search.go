package engine

import (
	"math/rand"
	"time"

	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
)

// DefaultDepth is a reasonable search depth for interactive play: strong
// enough to avoid one-move blunders, fast enough not to stall the prompt.
const DefaultDepth = 3

// Searcher runs minimax with alpha-beta pruning over a GameState. It owns a
// private random source for move-order shuffling, so two Searchers never
// contend on a shared generator and a fixed seed reproduces a game exactly.
//
// A Searcher drives one search at a time; run concurrent searches on
// separate Searcher and GameState pairs.
type Searcher struct {
	depth int
	rng   *rand.Rand

	nodes uint64
}

// NewSearcher returns a Searcher that looks ahead the given number of plies,
// seeded from the clock. Depths below 1 are raised to 1.
func NewSearcher(depth int) *Searcher {
	return NewSeededSearcher(depth, time.Now().UnixNano())
}

// NewSeededSearcher is NewSearcher with an explicit seed, for reproducible
// games and deterministic tests.
func NewSeededSearcher(depth int, seed int64) *Searcher {
	if depth < 1 {
		depth = 1
	}
	return &Searcher{depth: depth, rng: rand.New(rand.NewSource(seed))}
}

// Depth returns the configured search depth in plies.
func (s *Searcher) Depth() int { return s.depth }

// Nodes returns the number of positions visited by the last BestMove call.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// RandomMove picks a uniformly random legal move. It reports false when the
// position is terminal.
func (s *Searcher) RandomMove(g *chess.GameState) (chess.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}

// BestMove searches the position to the configured depth and returns the
// best move found. White is the maximizing side throughout; the root adopts
// a move only on strict score improvement, so among equally scored moves the
// shuffle decides which is kept. If no move ever strictly improves on the
// initial bound (every line loses by forced mate), a random legal move is
// played instead of none. Reports false only when the position is terminal.
func (s *Searcher) BestMove(g *chess.GameState) (chess.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	s.nodes = 0
	s.shuffle(moves)

	alpha, beta := -CheckmateScore, CheckmateScore

	var best chess.Move
	found := false

	if g.SideToMove() == chess.White {
		bestScore := -CheckmateScore
		for _, m := range moves {
			g.MakeMove(m)
			score := s.minimax(g, s.depth-1, alpha, beta, false)
			g.UndoMove()
			if score > bestScore {
				bestScore = score
				best, found = m, true
			}
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
	} else {
		bestScore := CheckmateScore
		for _, m := range moves {
			g.MakeMove(m)
			score := s.minimax(g, s.depth-1, alpha, beta, true)
			g.UndoMove()
			if score < bestScore {
				bestScore = score
				best, found = m, true
			}
			beta = min(beta, score)
			if beta <= alpha {
				break
			}
		}
	}

	if !found {
		return s.RandomMove(g)
	}
	return best, true
}

// minimax is the recursive alpha-beta search. Scores are always from White's
// point of view; whiteTurn selects whether this level maximizes or minimizes.
func (s *Searcher) minimax(g *chess.GameState, depth, alpha, beta int, whiteTurn bool) int {
	s.nodes++
	if depth <= 0 || !g.HasLegalMoves() {
		return Evaluate(g)
	}

	moves := g.LegalMoves()
	s.shuffle(moves)

	if whiteTurn {
		bestScore := -CheckmateScore
		for _, m := range moves {
			g.MakeMove(m)
			score := s.minimax(g, depth-1, alpha, beta, false)
			g.UndoMove()
			bestScore = max(bestScore, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return bestScore
	}

	bestScore := CheckmateScore
	for _, m := range moves {
		g.MakeMove(m)
		score := s.minimax(g, depth-1, alpha, beta, true)
		g.UndoMove()
		bestScore = min(bestScore, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return bestScore
}

// shuffle randomizes move order in place. With no other move ordering this
// both varies play between games and, on average, helps pruning.
func (s *Searcher) shuffle(moves []chess.Move) {
	s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
