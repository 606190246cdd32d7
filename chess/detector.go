package chess

// Pin marks an allied piece that shields its king from a slider. Dir is the
// ray direction from the king toward the pinning piece; the pinned piece may
// only move along Dir or its negation.
type Pin struct {
	Coord Coord
	Dir   Direction
}

// Check records an enemy piece currently attacking the king. Dir is the ray
// direction from the king toward the attacker. For a checking knight Dir
// holds the knight offset itself, which is never colinear with any ray and
// so acts as the "not blockable" sentinel.
type Check struct {
	Coord Coord
	Dir   Direction
}

// Scan order matters to the pawn test below: indices 0-3 are the orthogonal
// rays, 4-5 the two upward diagonals, 6-7 the two downward diagonals.
var kingScanDirs = [8]Direction{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// pinsAndChecks ray-casts outward from the given king square for side and
// reports whether the king is attacked, which allied pieces are pinned, and
// where the checking pieces sit.
//
// The king coordinate is an explicit parameter and may be hypothetical (a
// square the king does not actually occupy) so king-move and castling
// legality can be probed without mutating the board. To make those probes
// work, the side's real king square is transparent to rays: a king retreating
// along a check ray must still see the checker behind its current square.
func (g *GameState) pinsAndChecks(king Coord, side Color) (inCheck bool, pins []Pin, checks []Check) {
	enemy := side.Opposite()

	for i, dir := range kingScanDirs {
		possiblePin := Pin{Coord: NoCoord}
		for dist := 1; dist < 8; dist++ {
			sq := king.Step(dir, dist)
			if !sq.InBounds() {
				break
			}
			p := g.board.PieceAt(sq)
			if p == NoPiece {
				continue
			}
			if p.IsAlly(side) {
				if p.Type() == PieceTypeKing {
					// The probing side's own king: see doc comment.
					continue
				}
				if possiblePin.Coord == NoCoord {
					possiblePin = Pin{Coord: sq, Dir: dir}
					continue
				}
				// Second allied piece on the ray: doubly blocked.
				break
			}
			// Enemy piece: can it reach the king along this ray?
			if attacksAlongRay(p.Type(), enemy, i, dist) {
				if possiblePin.Coord == NoCoord {
					inCheck = true
					checks = append(checks, Check{Coord: sq, Dir: dir})
				} else {
					pins = append(pins, possiblePin)
				}
			}
			break
		}
	}

	// Knight checks are probed separately; a knight never pins.
	for _, dir := range knightDirs {
		sq := king.Step(dir, 1)
		p := g.board.PieceAt(sq)
		if p.IsAlly(enemy) && p.Type() == PieceTypeKnight {
			inCheck = true
			checks = append(checks, Check{Coord: sq, Dir: dir})
		}
	}

	return inCheck, pins, checks
}

// attacksAlongRay reports whether an enemy piece of the given type reaches
// the king from ray direction index dirIdx at the given distance.
func attacksAlongRay(pt PieceType, enemy Color, dirIdx, dist int) bool {
	switch pt {
	case PieceTypeQueen:
		return true
	case PieceTypeRook:
		return dirIdx <= 3
	case PieceTypeBishop:
		return dirIdx >= 4
	case PieceTypeKing:
		return dist == 1
	case PieceTypePawn:
		if dist != 1 {
			return false
		}
		// White pawns attack up the board (toward row 0), so a white pawn
		// checks from the king's two downward diagonals, and vice versa.
		if enemy == White {
			return dirIdx == 6 || dirIdx == 7
		}
		return dirIdx == 4 || dirIdx == 5
	default:
		return false
	}
}

// kingSafeAt probes whether side's king would be attacked standing on c.
// Used for king-move and castling legality without touching the board.
func (g *GameState) kingSafeAt(c Coord, side Color) bool {
	inCheck, _, _ := g.pinsAndChecks(c, side)
	return !inCheck
}

// pinLookup converts the detector's pin list into the immutable
// coordinate-to-direction map consumed by the per-piece generators.
func pinLookup(pins []Pin) map[Coord]Direction {
	if len(pins) == 0 {
		return nil
	}
	m := make(map[Coord]Direction, len(pins))
	for _, p := range pins {
		m[p.Coord] = p.Dir
	}
	return m
}
