package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable flood-fills from start through open walls.
func reachable(g *Grid, start Position) map[Position]bool {
	seen := map[Position]bool{start: true}
	stack := []Position{start}
	for len(stack) > 0 {
		p := pop(&stack)
		c, _ := g.Cell(p)
		for _, d := range neighborOrder {
			if c.Wall(d) {
				continue
			}
			n, ok := g.Neighbor(p, d)
			if !ok {
				continue
			}
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return seen
}

// assertWallSymmetry checks that every shared edge reads the same from both sides.
func assertWallSymmetry(t *testing.T, g *Grid) {
	t.Helper()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := Position{Col: col, Row: row}
			c, _ := g.Cell(p)
			for _, d := range neighborOrder {
				n, ok := g.Neighbor(p, d)
				if !ok {
					assert.True(t, c.Wall(d), "border wall of %v towards %s must stay", p, d)
					continue
				}
				other, _ := g.Cell(n)
				assert.Equal(t, c.Wall(d), other.Wall(d.Opposite()), "edge %v %s", p, d)
			}
		}
	}
}

func assertPerfect(t *testing.T, g *Grid) {
	t.Helper()
	total := g.Cols() * g.Rows()
	assert.Equal(t, total-1, g.OpenWalls(), "spanning tree edge count")

	// A connected graph with n-1 edges is a tree: no cycles, one path per pair.
	seen := reachable(g, Position{Col: 0, Row: 0})
	assert.Len(t, seen, total, "every cell reachable")
	assertWallSymmetry(t, g)
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {2, 4}, {5, 5}, {12, 9}, {30, 30}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := NewGrid(size[0], size[1])
			require.NoError(t, err)
			NewGenerator(seed).Generate(g)
			assertPerfect(t, g)

			for _, c := range g.cells {
				assert.True(t, c.Visited)
			}
		}
	}
}

func TestGenerateCorridor(t *testing.T) {
	g, err := NewGrid(1, 5)
	require.NoError(t, err)
	NewGenerator(7).Generate(g)

	for row := 0; row < 4; row++ {
		c, _ := g.Cell(Position{Col: 0, Row: row})
		assert.False(t, c.BottomWall, "row %d", row)
		assert.True(t, c.LeftWall)
		assert.True(t, c.RightWall)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := NewGrid(2, 4)
	require.NoError(t, err)
	second, err := NewGrid(2, 4)
	require.NoError(t, err)

	NewGenerator(99).Generate(first)
	NewGenerator(99).Generate(second)
	assert.Equal(t, first.cells, second.cells)
	assert.Equal(t, first.String(), second.String())

	t.Run("reseed restarts the sequence", func(t *testing.T) {
		gen := NewGenerator(99)
		a, _ := NewGrid(8, 8)
		gen.Generate(a)

		gen.Reseed(99)
		b, _ := NewGrid(8, 8)
		gen.Generate(b)
		assert.Equal(t, a.cells, b.cells)
		assert.Equal(t, int64(99), gen.Seed())
	})
}

func TestNewGeneratorRandomSeed(t *testing.T) {
	gen := NewGenerator(0)
	assert.NotZero(t, gen.Seed())
}

func TestUnvisitedNeighborsOrder(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	got := g.unvisitedNeighbors(Position{Col: 1, Row: 1})
	assert.Equal(t, []Position{
		{Col: 0, Row: 1},
		{Col: 2, Row: 1},
		{Col: 1, Row: 0},
		{Col: 1, Row: 2},
	}, got)

	g.markVisited(Position{Col: 0, Row: 1})
	got = g.unvisitedNeighbors(Position{Col: 1, Row: 1})
	assert.Len(t, got, 3)
	assert.NotContains(t, got, Position{Col: 0, Row: 1})
}
