package chess

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions always produce a queen, so positions where underpromotion
// matters count fewer nodes than the classical tables.
func (g *GameState) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.MakeMove(m)
		nodes += g.Perft(depth - 1)
		g.UndoMove()
	}
	return nodes
}

// PerftDivide returns the per-root-move node counts at the given depth,
// keyed by the move's coordinate notation. Useful for pinpointing which
// subtree disagrees with a reference count.
func (g *GameState) PerftDivide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range g.LegalMoves() {
		g.MakeMove(m)
		out[m.String()] = g.Perft(depth - 1)
		g.UndoMove()
	}
	return out
}
