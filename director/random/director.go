package random

import (
	"github.com/they4kman/gosnake/game"
	"golang.org/x/exp/rand"
)

// Director wanders: each tick it picks uniformly among the moves that survive
// the tick, and keeps its heading when nothing is safe.
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(uint64(seed)))}
}

func (director *Director) Steer(view game.View) game.Direction {
	moves := game.SafeMoves(view)
	if len(moves) == 0 {
		return view.Dir
	}
	return moves[director.rand.Intn(len(moves))]
}
