package maze

import (
	"math/rand"
	"sync"
	"time"
)

// neighborOrder is the fixed enumeration order of candidate cells before the
// random draw, which keeps seeded runs reproducible.
var neighborOrder = [4]Direction{Left, Right, Up, Down}

// Generator carves perfect mazes with randomized backtracking.
// A single Generator may be shared; draws from its source are serialized.
type Generator struct {
	rng  *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewGenerator creates a generator. A zero seed is replaced by the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (gen *Generator) Seed() int64 {
	return gen.seed
}

// Reseed restarts the random sequence from seed.
func (gen *Generator) Reseed(seed int64) {
	gen.mu.Lock()
	defer gen.mu.Unlock()
	gen.rng.Seed(seed)
	gen.seed = seed
}

// Generate turns a freshly allocated grid into a perfect maze, starting at (0,0).
func (gen *Generator) Generate(g *Grid) {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	current := Position{Col: 0, Row: 0}
	g.markVisited(current)
	stack := []Position{current}

	for len(stack) > 0 {
		candidates := g.unvisitedNeighbors(current)
		if len(candidates) == 0 {
			current = pop(&stack)
			continue
		}

		next := candidates[gen.rng.Intn(len(candidates))]
		_ = g.RemoveWallBetween(current, next)
		stack = append(stack, current)
		current = next
		g.markVisited(current)
	}
}

// unvisitedNeighbors lists the in-bound neighbours of p that are not yet visited.
func (g *Grid) unvisitedNeighbors(p Position) []Position {
	result := make([]Position, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		n, ok := g.Neighbor(p, d)
		if ok && !g.visited(n) {
			result = append(result, n)
		}
	}
	return result
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]Position) Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
