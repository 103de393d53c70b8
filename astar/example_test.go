package astar_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/core"
)

// ExampleAStar runs A* across a 3x3 grid with one blocked centre.
func ExampleAStar() {
	g := core.NewPlanar()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.AddNode(r2.Vec{X: float64(x), Y: float64(y)})
		}
	}
	id := func(x, y int) int { return y*3 + x + 1 }
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			if x+1 < 3 && !(x+1 == 1 && y == 1) {
				_ = g.AddEdge(id(x, y), id(x+1, y))
			}
			if y+1 < 3 && !(x == 1 && y+1 == 1) {
				_ = g.AddEdge(id(x, y), id(x, y+1))
			}
		}
	}

	res, _ := astar.AStar(g, id(0, 1), id(2, 1))
	fmt.Printf("cost %.0f, %d hops\n", res.Cost, len(res.Path)-1)
	// Output:
	// cost 4, 4 hops
}
