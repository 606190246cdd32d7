package chess

import "fmt"

// Move describes a single half-move. It is immutable once created: MakeMove
// and UndoMove read it but never modify it.
//
// Move identity for lookup and equality is (From, To) only. The engine always
// auto-promotes to a queen, so the promotion choice never distinguishes two
// moves; see Matches.
type Move struct {
	From, To Coord
	Moved    Piece
	Captured Piece // NoPiece when the move is quiet

	Promotion bool
	Castle    bool
	EnPassant bool
}

// NewMove builds a move of piece from 'from' to 'to' on the given board,
// recovering the moved and captured pieces and auto-detecting promotion.
// Castling and en passant moves are built by the generator (and by
// GameState.NewMoveFromCoords for external callers), since they need game
// state the board alone does not carry.
func NewMove(from, to Coord, b *Board) Move {
	m := Move{
		From:     from,
		To:       to,
		Moved:    b.PieceAt(from),
		Captured: b.PieceAt(to),
	}
	if m.Moved == WhitePawn && to.Row == 0 {
		m.Promotion = true
	} else if m.Moved == BlackPawn && to.Row == 7 {
		m.Promotion = true
	}
	return m
}

// newEnPassantMove builds an en passant capture: the captured pawn sits on
// the mover's row, not on the destination square.
func newEnPassantMove(from, to Coord, b *Board) Move {
	m := Move{
		From:      from,
		To:        to,
		Moved:     b.PieceAt(from),
		EnPassant: true,
	}
	if m.Moved.Color() == White {
		m.Captured = BlackPawn
	} else {
		m.Captured = WhitePawn
	}
	return m
}

// newCastleMove builds a castling move (king moves two columns; the rook is
// relocated during execution, not as a separate move).
func newCastleMove(from, to Coord, b *Board) Move {
	return Move{From: from, To: to, Moved: b.PieceAt(from), Castle: true}
}

// Matches reports move identity: origin and destination squares only.
func (m Move) Matches(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool { return m.Captured != NoPiece }

// String renders the move as a coordinate pair ("e2e4"). This form
// round-trips through GameState.ParseMove for any textual interface.
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// NewMoveFromCoords builds a Move from two coordinates against the current
// position, recovering the captured piece and auto-detecting the promotion,
// castle and en passant flags. Constructing a move performs no legality
// check; legality is centralized in LegalMoves.
func (g *GameState) NewMoveFromCoords(from, to Coord) Move {
	p := g.board.PieceAt(from)
	if p.Type() == PieceTypePawn && to == g.epTarget && from.Col != to.Col && g.board.IsEmpty(to) {
		return newEnPassantMove(from, to, &g.board)
	}
	if p.Type() == PieceTypeKing && from.Row == to.Row && abs(to.Col-from.Col) == 2 {
		return newCastleMove(from, to, &g.board)
	}
	return NewMove(from, to, &g.board)
}

// ParseMove parses a coordinate-pair move string ("e2e4") against the
// current position. Malformed notation is rejected here and never reaches
// board logic.
func (g *GameState) ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move %q: want origin and destination, e.g. \"e2e4\"", s)
	}
	from, err := ParseCoord(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %v", s, err)
	}
	to, err := ParseCoord(s[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %v", s, err)
	}
	return g.NewMoveFromCoords(from, to), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
