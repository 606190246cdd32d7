package chess

// CastleRights packs the four castling permissions into one byte.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastleRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in f is still available.
func (r CastleRights) Has(f CastleRights) bool { return r&f == f }

func (r CastleRights) String() string {
	if r == 0 {
		return "-"
	}
	var s []byte
	if r.Has(WhiteKingside) {
		s = append(s, 'K')
	}
	if r.Has(WhiteQueenside) {
		s = append(s, 'Q')
	}
	if r.Has(BlackKingside) {
		s = append(s, 'k')
	}
	if r.Has(BlackQueenside) {
		s = append(s, 'q')
	}
	return string(s)
}

// Status classifies a position as ongoing or as one of the terminal results.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
	StatusThreefold
	StatusInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusThreefold:
		return "draw by threefold repetition"
	case StatusInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "ongoing"
	}
}

// snapshot holds the irreversible state a move destroys. The board itself is
// restored from the Move record, so only rights, the en passant target and
// the halfmove clock need saving.
type snapshot struct {
	rights   CastleRights
	epTarget Coord
	halfmove int
}

// GameState is the full mutable game: board, side to move, castling rights,
// en passant target, move history and repetition bookkeeping.
//
// A GameState is not safe for concurrent mutation. Search descends a single
// state with MakeMove/UndoMove pairs; concurrent games each own their state.
type GameState struct {
	board      Board
	sideToMove Color
	rights     CastleRights
	epTarget   Coord
	kings      [2]Coord

	halfmove int // plies since the last pawn move or capture
	fullmove int

	moveLog       []Move
	snapshots     []snapshot
	positionCount map[string]int

	// Lazy legal-move cache, invalidated by MakeMove and UndoMove.
	legal      []Move
	legalValid bool
	inCheck    bool
}

// NewGame returns a game set up at the standard starting position.
func NewGame() *GameState {
	return &GameState{
		board:         StartingBoard(),
		sideToMove:    White,
		rights:        AllCastleRights,
		epTarget:      NoCoord,
		kings:         [2]Coord{{7, 4}, {0, 4}},
		fullmove:      1,
		positionCount: make(map[string]int),
	}
}

// Accessors. BoardCopy and MoveHistory return copies so callers cannot
// corrupt the game through a leaked reference.

func (g *GameState) SideToMove() Color       { return g.sideToMove }
func (g *GameState) Rights() CastleRights    { return g.rights }
func (g *GameState) EnPassantTarget() Coord  { return g.epTarget }
func (g *GameState) PieceAt(c Coord) Piece   { return g.board.PieceAt(c) }
func (g *GameState) BoardCopy() Board        { return g.board }
func (g *GameState) BoardString() string     { return g.board.String() }
func (g *GameState) MoveCount() int          { return len(g.moveLog) }

func (g *GameState) MoveHistory() []Move {
	h := make([]Move, len(g.moveLog))
	copy(h, g.moveLog)
	return h
}

// LastMove returns the most recent move, or false when none has been played.
func (g *GameState) LastMove() (Move, bool) {
	if len(g.moveLog) == 0 {
		return Move{}, false
	}
	return g.moveLog[len(g.moveLog)-1], true
}

func (g *GameState) kingSquare(side Color) Coord { return g.kings[side] }

// KingSquare returns the current square of side's king.
func (g *GameState) KingSquare(side Color) Coord { return g.kings[side] }

// LegalMoves returns every legal move in the current position. The list is
// computed at most once per position and callers receive a fresh copy, so
// reordering it (the search shuffles) never disturbs the cache.
func (g *GameState) LegalMoves() []Move {
	g.ensureLegal()
	out := make([]Move, len(g.legal))
	copy(out, g.legal)
	return out
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without copying the move list.
func (g *GameState) HasLegalMoves() bool {
	g.ensureLegal()
	return len(g.legal) > 0
}

// InCheck reports whether the side to move is in check.
func (g *GameState) InCheck() bool {
	g.ensureLegal()
	return g.inCheck
}

func (g *GameState) ensureLegal() {
	if !g.legalValid {
		g.legal = g.computeLegalMoves()
		g.legalValid = true
	}
}

// IsLegal reports whether m matches a legal move by origin and destination.
func (g *GameState) IsLegal(m Move) bool {
	g.ensureLegal()
	for _, lm := range g.legal {
		if lm.Matches(m) {
			return true
		}
	}
	return false
}

// MakeMove executes m, which must come from LegalMoves (or match one; see
// IsLegal). It updates the board, castling rights, en passant target, king
// tracking and the repetition counter, and flips the side to move.
func (g *GameState) MakeMove(m Move) {
	g.snapshots = append(g.snapshots, snapshot{g.rights, g.epTarget, g.halfmove})
	side := m.Moved.Color()

	g.board.ClearSquare(m.From)
	if m.Promotion {
		g.board.SetPiece(m.To, PieceFromType(side, PieceTypeQueen))
	} else {
		g.board.SetPiece(m.To, m.Moved)
	}

	switch {
	case m.EnPassant:
		g.board.ClearSquare(Coord{m.From.Row, m.To.Col})
	case m.Castle:
		row := m.From.Row
		if m.To.Col == 6 {
			g.board.ClearSquare(Coord{row, 7})
			g.board.SetPiece(Coord{row, 5}, PieceFromType(side, PieceTypeRook))
		} else {
			g.board.ClearSquare(Coord{row, 0})
			g.board.SetPiece(Coord{row, 3}, PieceFromType(side, PieceTypeRook))
		}
	}

	if m.Moved.Type() == PieceTypeKing {
		g.kings[side] = m.To
	}
	g.updateRights(m)

	// A double pawn push exposes the skipped square to en passant.
	g.epTarget = NoCoord
	if m.Moved.Type() == PieceTypePawn && abs(m.To.Row-m.From.Row) == 2 {
		g.epTarget = Coord{(m.From.Row + m.To.Row) / 2, m.From.Col}
	}

	if m.Moved.Type() == PieceTypePawn || m.IsCapture() {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if side == Black {
		g.fullmove++
	}

	g.sideToMove = side.Opposite()
	g.moveLog = append(g.moveLog, m)
	g.positionCount[g.positionKey()]++
	g.legalValid = false
}

func (g *GameState) updateRights(m Move) {
	clearAt := func(c Coord) {
		switch c {
		case Coord{7, 4}:
			g.rights &^= WhiteKingside | WhiteQueenside
		case Coord{7, 7}:
			g.rights &^= WhiteKingside
		case Coord{7, 0}:
			g.rights &^= WhiteQueenside
		case Coord{0, 4}:
			g.rights &^= BlackKingside | BlackQueenside
		case Coord{0, 7}:
			g.rights &^= BlackKingside
		case Coord{0, 0}:
			g.rights &^= BlackQueenside
		}
	}
	clearAt(m.From)
	clearAt(m.To)
}

// UndoMove reverses the last move and reports whether there was one to undo.
func (g *GameState) UndoMove() bool {
	if len(g.moveLog) == 0 {
		return false
	}

	// The position being left stops counting toward repetition.
	key := g.positionKey()
	if g.positionCount[key] <= 1 {
		delete(g.positionCount, key)
	} else {
		g.positionCount[key]--
	}

	m := g.moveLog[len(g.moveLog)-1]
	g.moveLog = g.moveLog[:len(g.moveLog)-1]
	snap := g.snapshots[len(g.snapshots)-1]
	g.snapshots = g.snapshots[:len(g.snapshots)-1]
	side := m.Moved.Color()

	g.board.SetPiece(m.From, m.Moved)
	g.board.SetPiece(m.To, m.Captured)
	switch {
	case m.EnPassant:
		g.board.ClearSquare(m.To)
		g.board.SetPiece(Coord{m.From.Row, m.To.Col}, m.Captured)
	case m.Castle:
		row := m.From.Row
		if m.To.Col == 6 {
			g.board.ClearSquare(Coord{row, 5})
			g.board.SetPiece(Coord{row, 7}, PieceFromType(side, PieceTypeRook))
		} else {
			g.board.ClearSquare(Coord{row, 3})
			g.board.SetPiece(Coord{row, 0}, PieceFromType(side, PieceTypeRook))
		}
	}

	if m.Moved.Type() == PieceTypeKing {
		g.kings[side] = m.From
	}

	g.rights = snap.rights
	g.epTarget = snap.epTarget
	g.halfmove = snap.halfmove
	if side == Black {
		g.fullmove--
	}
	g.sideToMove = side
	g.legalValid = false
	return true
}

// Status classifies the current position. Checkmate and stalemate take
// precedence over the draw counters so a mating move is never reported as a
// repetition.
func (g *GameState) Status() Status {
	g.ensureLegal()
	if len(g.legal) == 0 {
		if g.inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if g.positionCount[g.positionKey()] >= 3 {
		return StatusThreefold
	}
	if g.insufficientMaterial() {
		return StatusInsufficientMaterial
	}
	return StatusOngoing
}

// GameOver reports whether the game has reached a terminal position.
func (g *GameState) GameOver() bool { return g.Status() != StatusOngoing }

// insufficientMaterial detects dead positions: bare kings, a lone minor
// piece, or two knights against a bare king. Any pawn, rook or queen keeps
// the game alive.
func (g *GameState) insufficientMaterial() bool {
	var minors [2]int
	var knights [2]int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := g.board[row][col]
			switch p.Type() {
			case PieceTypeNone, PieceTypeKing:
			case PieceTypeBishop:
				minors[p.Color()]++
			case PieceTypeKnight:
				minors[p.Color()]++
				knights[p.Color()]++
			default:
				return false
			}
		}
	}
	if minors[White] <= 1 && minors[Black] <= 1 {
		return true
	}
	for side := White; side <= Black; side++ {
		if minors[side] == 2 && knights[side] == 2 && minors[side.Opposite()] == 0 {
			return true
		}
	}
	return false
}
