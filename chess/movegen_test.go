package chess_test

import (
	"testing"

	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
)

func movesFrom(g *chess.GameState, sq string) []chess.Move {
	from, err := chess.ParseCoord(sq)
	if err != nil {
		panic(err)
	}
	var out []chess.Move
	for _, m := range g.LegalMoves() {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func hasMove(g *chess.GameState, s string) bool {
	m, err := g.ParseMove(s)
	if err != nil {
		return false
	}
	return g.IsLegal(m)
}

func TestPinnedKnightIsFrozen(t *testing.T) {
	// Black rook on e4 pins the e2 knight against the e1 king.
	g, err := chess.NewGameFromFEN("4k3/8/8/8/4r3/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if ms := movesFrom(g, "e2"); len(ms) != 0 {
		t.Fatalf("pinned knight should have no moves, got %v", ms)
	}
}

func TestPinnedRookSlidesAlongPinRay(t *testing.T) {
	g, err := chess.NewGameFromFEN("4k3/8/8/8/4r3/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if !hasMove(g, "e2e3") {
		t.Fatalf("pinned rook should still advance along the pin ray")
	}
	if !hasMove(g, "e2e4") {
		t.Fatalf("pinned rook should still capture the pinning piece")
	}
	if hasMove(g, "e2d2") || hasMove(g, "e2f2") {
		t.Fatalf("pinned rook must not leave the pin ray")
	}
}

func TestPinnedBishopOnStraightRayIsFrozen(t *testing.T) {
	g, err := chess.NewGameFromFEN("4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if ms := movesFrom(g, "e2"); len(ms) != 0 {
		t.Fatalf("vertically pinned bishop should have no moves, got %v", ms)
	}
}

func TestPinnedPawnCapturesAlongDiagonalPin(t *testing.T) {
	// Black bishop on b4 pins the d2 pawn diagonally; the pawn may capture
	// the bishop but not push forward.
	g, err := chess.NewGameFromFEN("4k3/8/8/8/1b6/2P5/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if !hasMove(g, "c3b4") {
		t.Fatalf("diagonally pinned pawn should capture the pinner")
	}
	if hasMove(g, "c3c4") {
		t.Fatalf("diagonally pinned pawn must not push forward")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Knight on d3 and rook on h1 both check the e1 king; the d1 queen must
	// stay put even though it could capture or block either checker alone.
	g, err := chess.NewGameFromFEN("4k3/8/8/8/8/3n4/8/3QK2r w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if !g.InCheck() {
		t.Fatalf("expected White in check")
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		t.Fatalf("king should have at least one escape")
	}
	king := g.KingSquare(chess.White)
	for _, m := range moves {
		if m.From != king {
			t.Fatalf("double check admits only king moves, got %s", m)
		}
	}
}

func TestSingleCheckBlockCaptureOrEscape(t *testing.T) {
	// Black rook on e4 checks the e1 king; the b3 rook can interpose on e3
	// but nowhere else.
	g, err := chess.NewGameFromFEN("4k3/8/8/8/4r3/1R6/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if !g.InCheck() {
		t.Fatalf("expected White in check")
	}
	if !hasMove(g, "b3e3") {
		t.Fatalf("interposition on e3 should be legal")
	}
	if hasMove(g, "b3b4") {
		t.Fatalf("a rook move that ignores the check must be filtered")
	}
	for _, m := range movesFrom(g, "b3") {
		if m.To != (chess.Coord{Row: 5, Col: 4}) {
			t.Fatalf("only the e3 interposition resolves the check, got %s", m)
		}
	}
}

func TestKingMayNotStepAlongCheckRay(t *testing.T) {
	// Rook checks along the e-file; retreating to e2 keeps the king on the
	// ray and must be rejected even though e2 is behind the current square.
	g, err := chess.NewGameFromFEN("4k3/4r3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if hasMove(g, "e1e2") {
		t.Fatalf("king must not stay on the checking ray")
	}
	if !hasMove(g, "e1d1") || !hasMove(g, "e1f1") {
		t.Fatalf("sideways escapes should be legal")
	}
}

func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	// Capturing en passant would remove both fifth-rank pawns and expose
	// the a5 king to the h5 queen along the rank.
	g, err := chess.NewGameFromFEN("7k/8/8/K2pP2q/8/8/8/8 w - d6 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if hasMove(g, "e5d6") {
		t.Fatalf("en passant exposing the king along the rank must be illegal")
	}
	if !hasMove(g, "e5e6") {
		t.Fatalf("the plain pawn push should still be legal")
	}
}

func TestEnPassantWithoutRankThreatIsLegal(t *testing.T) {
	// Same shape but the rank piece is a bishop: no discovered check.
	g, err := chess.NewGameFromFEN("7k/8/8/K2pP2b/8/8/8/8 w - d6 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if !hasMove(g, "e5d6") {
		t.Fatalf("en passant should be legal without a rank slider")
	}
}

func TestCastlingThroughAttackedSquareForbidden(t *testing.T) {
	// Black rook on f3 covers f1: kingside castling is out, queenside fine.
	g, err := chess.NewGameFromFEN("r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if hasMove(g, "e1g1") {
		t.Fatalf("castling through an attacked square must be illegal")
	}
	if !hasMove(g, "e1c1") {
		t.Fatalf("queenside castling should remain legal")
	}
}

func TestCastlingBlockedBySquaresBetween(t *testing.T) {
	// Knights on b1 and g1 block both castles even with full rights.
	g, err := chess.NewGameFromFEN("4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if hasMove(g, "e1g1") || hasMove(g, "e1c1") {
		t.Fatalf("castling over occupied squares must be illegal")
	}
}

func TestNoCastlingWhileInCheck(t *testing.T) {
	g, err := chess.NewGameFromFEN("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN failed: %v", err)
	}
	if !g.InCheck() {
		t.Fatalf("expected White in check")
	}
	if hasMove(g, "e1g1") || hasMove(g, "e1c1") {
		t.Fatalf("castling out of check must be illegal")
	}
}

func TestStartingPositionMoveCount(t *testing.T) {
	g := chess.NewGame()
	if got := len(g.LegalMoves()); got != 20 {
		t.Fatalf("starting position: got %d moves want 20", got)
	}
	if g.InCheck() {
		t.Fatalf("starting position is not check")
	}
}
