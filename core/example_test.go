package core_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/pathlab/core"
)

// ExampleGraph shows creation, default Euclidean weights and node removal.
func ExampleGraph() {
	// 1) Three points of a 3-4-5 triangle:
	g := core.NewPlanar()
	a := g.AddNode(r2.Vec{X: 0, Y: 0})
	b := g.AddNode(r2.Vec{X: 3, Y: 0})
	c := g.AddNode(r2.Vec{X: 3, Y: 4})

	// 2) Connect them; weights default to the distance between endpoints:
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(a, c)
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d %.0f\n", e.A, e.B, e.Weight)
	}

	// 3) Removing b also removes both of its edges:
	_ = g.RemoveNode(b)
	fmt.Println("edges left:", g.EdgeCount())

	// Output:
	// 1-2 3
	// 1-3 5
	// 2-3 4
	// edges left: 1
}
