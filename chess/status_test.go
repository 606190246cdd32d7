package chess_test

import (
	"testing"

	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
)

func mustGame(t *testing.T, fen string) *chess.GameState {
	t.Helper()
	g, err := chess.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

func TestCheckmateFoolsMate(t *testing.T) {
	// Black just played Qh4#; White to move and mated.
	g := mustGame(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !g.InCheck() {
		t.Fatalf("expected White in check")
	}
	if g.HasLegalMoves() {
		t.Fatalf("expected no legal moves in mate")
	}
	if got := g.Status(); got != chess.StatusCheckmate {
		t.Fatalf("status: got %v want checkmate", got)
	}
	if !g.GameOver() {
		t.Fatalf("mate position should be game over")
	}
}

func TestStalemateBasic(t *testing.T) {
	g := mustGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if g.InCheck() {
		t.Fatalf("expected Black not in check")
	}
	if got := g.Status(); got != chess.StatusStalemate {
		t.Fatalf("status: got %v want stalemate", got)
	}
}

func TestMateInOneMakeAndDetect(t *testing.T) {
	// Back-rank mate: Ra1-a8#.
	g := mustGame(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	m, err := g.ParseMove("a1a8")
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}
	if !g.IsLegal(m) {
		t.Fatalf("a1a8 should be legal")
	}
	g.MakeMove(m)
	if got := g.Status(); got != chess.StatusCheckmate {
		t.Fatalf("status after Ra8: got %v want checkmate", got)
	}
	g.UndoMove()
	if got := g.Status(); got != chess.StatusOngoing {
		t.Fatalf("status after undo: got %v want ongoing", got)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want chess.Status
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.StatusInsufficientMaterial},   // K vs K
		{"4k3/8/8/8/8/8/8/4KB2 w - - 0 1", chess.StatusInsufficientMaterial}, // K+B vs K
		{"4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", chess.StatusInsufficientMaterial}, // K vs K+N
		{"4k1n1/8/8/8/8/8/8/4KB2 w - - 0 1", chess.StatusInsufficientMaterial}, // minor each
		{"4k3/8/8/8/8/8/8/1NN1K3 w - - 0 1", chess.StatusInsufficientMaterial}, // K+NN vs K
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", chess.StatusOngoing},
		{"4k3/p7/8/8/8/8/8/4K3 w - - 0 1", chess.StatusOngoing},
		{"4k1n1/8/8/8/8/8/8/1NN1K3 w - - 0 1", chess.StatusOngoing}, // NN vs N keeps mating chances
	}
	for _, c := range cases {
		g := mustGame(t, c.fen)
		if got := g.Status(); got != c.want {
			t.Fatalf("%s: status got %v want %v", c.fen, got, c.want)
		}
	}
}

// Shuffling the knights out and back repeats the position after the first
// hop at plies 5 and 9; its third occurrence draws the game one move into
// the third cycle. Undoing that move revives the game.
func TestThreefoldRepetition(t *testing.T) {
	g := chess.NewGame()
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for ply := 1; ply <= 9; ply++ {
		m, err := g.ParseMove(cycle[(ply-1)%len(cycle)])
		if err != nil {
			t.Fatalf("ply %d: ParseMove failed: %v", ply, err)
		}
		g.MakeMove(m)
		want := chess.StatusOngoing
		if ply == 9 {
			want = chess.StatusThreefold
		}
		if got := g.Status(); got != want {
			t.Fatalf("ply %d: status got %v want %v", ply, got, want)
		}
	}

	if !g.UndoMove() {
		t.Fatalf("UndoMove failed")
	}
	if got := g.Status(); got != chess.StatusOngoing {
		t.Fatalf("status after undo: got %v want ongoing", got)
	}
}

// A repetition count only matches when side to move, castling rights and en
// passant target all match, not just the piece placement.
func TestRepetitionDistinguishesRights(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	seq := []string{"a1b1", "a8b8", "b1a1", "b8a8", "a1b1", "a8b8", "b1a1", "b8a8"}
	for _, s := range seq {
		m, err := g.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%s) failed: %v", s, err)
		}
		g.MakeMove(m)
	}
	// The pieces are back, but both queenside rights died on the first
	// rook moves, so the start position itself never recurs.
	if got := g.Status(); got == chess.StatusThreefold {
		t.Fatalf("positions with different castling rights must not count as repeats")
	}
}
