package engine

import (
	"github.com/AdrianGev/UPenn-ESAP-Capstone/chess"
)

// CheckmateScore is the terminal score for a mated position, signed so that
// positive always favors White. All material scores are bounded well inside
// it, so a forced mate dominates any material advantage.
const CheckmateScore = 100000

// StalemateScore is the value of any drawn terminal position.
const StalemateScore = 0

// Material values indexed by piece type. The king carries no material value;
// losing it is expressed through CheckmateScore instead.
var materialValues = [7]int{
	chess.PieceTypePawn:   10,
	chess.PieceTypeKnight: 30,
	chess.PieceTypeBishop: 35,
	chess.PieceTypeRook:   50,
	chess.PieceTypeQueen:  90,
	chess.PieceTypeKing:   0,
}

// Piece-square tables, row 0 = rank 8. Each entry is a small bonus that
// steers pieces toward active squares: knights to the center, bishops onto
// long diagonals, rooks to open central files and the far ranks, pawns
// forward. The minor and major piece tables are vertically symmetric and
// shared by both sides; pawns advance in opposite directions and get a
// mirrored table each.

var knightTable = [8][8]int{
	{1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1},
}

var bishopTable = [8][8]int{
	{4, 3, 2, 1, 1, 2, 3, 4},
	{3, 4, 3, 2, 2, 3, 4, 3},
	{2, 3, 4, 3, 3, 4, 3, 2},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{2, 3, 4, 3, 3, 4, 3, 2},
	{3, 4, 3, 2, 2, 3, 4, 3},
	{4, 3, 2, 1, 1, 2, 3, 4},
}

var queenTable = [8][8]int{
	{1, 1, 1, 3, 1, 1, 1, 1},
	{1, 2, 3, 3, 3, 1, 1, 1},
	{1, 4, 3, 3, 3, 4, 2, 1},
	{1, 2, 3, 3, 3, 2, 2, 1},
	{1, 2, 3, 3, 3, 2, 2, 1},
	{1, 4, 3, 3, 3, 4, 2, 1},
	{1, 2, 3, 3, 3, 1, 1, 1},
	{1, 1, 1, 3, 1, 1, 1, 1},
}

var rookTable = [8][8]int{
	{4, 3, 4, 4, 4, 4, 3, 4},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 3, 2, 1},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{4, 4, 4, 4, 4, 4, 4, 4},
	{4, 3, 4, 4, 4, 4, 3, 4},
}

var whitePawnTable = [8][8]int{
	{8, 8, 8, 8, 8, 8, 8, 8},
	{8, 8, 8, 8, 8, 8, 8, 8},
	{5, 6, 6, 7, 7, 6, 6, 5},
	{2, 3, 3, 5, 5, 3, 3, 2},
	{1, 2, 3, 4, 4, 2, 2, 1},
	{1, 2, 3, 3, 3, 2, 2, 1},
	{1, 1, 1, 0, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var blackPawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 1, 0, 0, 1, 1, 1},
	{1, 2, 3, 3, 3, 2, 2, 1},
	{1, 2, 3, 4, 4, 2, 2, 1},
	{2, 3, 3, 5, 5, 3, 3, 2},
	{5, 6, 6, 7, 7, 6, 6, 5},
	{8, 8, 8, 8, 8, 8, 8, 8},
	{8, 8, 8, 8, 8, 8, 8, 8},
}

// positionalBonus looks up the square bonus for a piece. Kings get none;
// they are on the board by definition.
func positionalBonus(p chess.Piece, row, col int) int {
	switch p.Type() {
	case chess.PieceTypeKnight:
		return knightTable[row][col]
	case chess.PieceTypeBishop:
		return bishopTable[row][col]
	case chess.PieceTypeQueen:
		return queenTable[row][col]
	case chess.PieceTypeRook:
		return rookTable[row][col]
	case chess.PieceTypePawn:
		if p.Color() == chess.White {
			return whitePawnTable[row][col]
		}
		return blackPawnTable[row][col]
	default:
		return 0
	}
}

// Evaluate scores the position from White's point of view: positive favors
// White, negative favors Black. Terminal positions score CheckmateScore
// against the side to move, or StalemateScore for a stalemate; otherwise the
// score is the material balance plus the positional bonuses of every piece.
func Evaluate(g *chess.GameState) int {
	if !g.HasLegalMoves() {
		if g.InCheck() {
			if g.SideToMove() == chess.White {
				return -CheckmateScore
			}
			return CheckmateScore
		}
		return StalemateScore
	}

	board := g.BoardCopy()
	score := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := board[row][col]
			if p == chess.NoPiece {
				continue
			}
			v := materialValues[p.Type()] + positionalBonus(p, row, col)
			if p.Color() == chess.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
