package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceChars = map[Piece]rune{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B',
	WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b',
	BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

func charFromPiece(p Piece) rune {
	if c, ok := pieceChars[p]; ok {
		return c
	}
	return '.'
}

func pieceFromChar(c rune) Piece {
	for p, pc := range pieceChars {
		if pc == c {
			return p
		}
	}
	return NoPiece
}

// NewGameFromFEN parses a FEN string into a fresh game. The position fields
// are validated enough to guarantee the engine's internal invariants hold:
// exactly one king per side, eight ranks of eight squares, a recognized side
// to move, and castling/en passant fields that parse.
func NewGameFromFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid FEN %q: want at least 4 fields, got %d", fen, len(fields))
	}

	g := &GameState{
		epTarget:      NoCoord,
		kings:         [2]Coord{NoCoord, NoCoord},
		fullmove:      1,
		positionCount: make(map[string]int),
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid FEN %q: want 8 ranks, got %d", fen, len(ranks))
	}
	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p := pieceFromChar(c)
			if p == NoPiece {
				return nil, fmt.Errorf("invalid FEN %q: unknown piece %q", fen, c)
			}
			if col > 7 {
				return nil, fmt.Errorf("invalid FEN %q: rank %d overflows", fen, 8-row)
			}
			g.board[row][col] = p
			if p.Type() == PieceTypeKing {
				if g.kings[p.Color()] != NoCoord {
					return nil, fmt.Errorf("invalid FEN %q: multiple %s kings", fen, p.Color())
				}
				g.kings[p.Color()] = Coord{row, col}
			}
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("invalid FEN %q: rank %d has %d squares", fen, 8-row, col)
		}
	}
	if g.kings[White] == NoCoord || g.kings[Black] == NoCoord {
		return nil, fmt.Errorf("invalid FEN %q: both sides need a king", fen)
	}

	switch fields[1] {
	case "w":
		g.sideToMove = White
	case "b":
		g.sideToMove = Black
	default:
		return nil, fmt.Errorf("invalid FEN %q: side to move must be w or b", fen)
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				g.rights |= WhiteKingside
			case 'Q':
				g.rights |= WhiteQueenside
			case 'k':
				g.rights |= BlackKingside
			case 'q':
				g.rights |= BlackQueenside
			default:
				return nil, fmt.Errorf("invalid FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		ep, err := ParseCoord(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: %v", fen, err)
		}
		g.epTarget = ep
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad halfmove clock %q", fen, fields[4])
		}
		g.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad fullmove number %q", fen, fields[5])
		}
		g.fullmove = n
	}

	return g, nil
}

// ToFEN serializes the current position as a full six-field FEN string.
func (g *GameState) ToFEN() string {
	return fmt.Sprintf("%s %d %d", g.positionKey(), g.halfmove, g.fullmove)
}

// positionKey is the first four FEN fields: piece placement, side to move,
// castling rights and en passant target. Two positions repeat, for the
// threefold rule, exactly when their keys match.
func (g *GameState) positionKey() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := g.board[row][col]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if g.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.rights.String())
	sb.WriteByte(' ')
	sb.WriteString(g.epTarget.String())
	return sb.String()
}
