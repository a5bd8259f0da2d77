package game

import "golang.org/x/exp/rand"

type FoodSpawner interface {
	Spawn(snake *Snake, tileCount int) Point
}

type SpawnerFunc func(snake *Snake, tileCount int) Point

func (f SpawnerFunc) Spawn(snake *Snake, tileCount int) Point {
	return f(snake, tileCount)
}

// RandomSpawner picks uniformly random free cells. After maxAttempts misses it
// gives up and returns the origin, so it terminates on a nearly full grid.
type RandomSpawner struct {
	rand        *rand.Rand
	maxAttempts int
}

func NewRandomSpawner(rng *rand.Rand, maxAttempts int) *RandomSpawner {
	return &RandomSpawner{
		rand:        rng,
		maxAttempts: maxAttempts,
	}
}

func (spawner *RandomSpawner) Spawn(snake *Snake, tileCount int) Point {
	for attempt := 0; attempt < spawner.maxAttempts; attempt++ {
		food := Point{spawner.rand.Intn(tileCount), spawner.rand.Intn(tileCount)}
		if snake == nil || !snake.Contains(food) {
			return food
		}
	}
	return Point{}
}
