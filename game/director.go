package game

import "github.com/they4kman/gosnake/util/collections"

type Director interface {
	/**
	 * Choose the heading for the coming tick. Called with the engine locked,
	 * so it must not call back into the engine.
	 */
	Steer(view View) Direction
}

// SafeMoves lists the non-reversing directions that survive the next tick.
// The tail counts as occupied.
func SafeMoves(view View) []Direction {
	if len(view.Snake) == 0 {
		return nil
	}

	body := collections.NewSet(view.Snake...)
	head := view.Head()

	moves := make([]Direction, 0, len(Directions))
	for _, dir := range Directions {
		if !view.Dir.IsZero() && dir == view.Dir.Opposite() {
			continue
		}
		next := head.Add(dir)
		if !next.In(view.TileCount) || body.Contains(next) {
			continue
		}
		moves = append(moves, dir)
	}
	return moves
}
