package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// Command is a reversible graph edit.
type Command[C any] interface {
	// Do applies the edit.
	Do(g *core.Graph[C]) error
	// Undo reverts a successful Do.
	Undo(g *core.Graph[C]) error
	fmt.Stringer
}

// AddNodeCmd adds a node at Coord. ID is filled in by Do.
type AddNodeCmd[C any] struct {
	Coord C
	ID    int
}

func (c *AddNodeCmd[C]) Do(g *core.Graph[C]) error {
	c.ID = g.AddNode(c.Coord)
	return nil
}

func (c *AddNodeCmd[C]) Undo(g *core.Graph[C]) error {
	return ignoreGone(g.RemoveNode(c.ID))
}

func (c *AddNodeCmd[C]) String() string { return fmt.Sprintf("addNode(%d)", c.ID) }

// ConnectCmd adds an edge between A and B. Undo removes every edge between
// them, parallel ones included.
type ConnectCmd[C any] struct {
	A, B int
	// Weight is used when HasWeight; otherwise the metric default applies.
	Weight    float64
	HasWeight bool
}

func (c *ConnectCmd[C]) Do(g *core.Graph[C]) error {
	if c.HasWeight {
		return g.AddEdge(c.A, c.B, core.WithWeight(c.Weight))
	}

	return g.AddEdge(c.A, c.B)
}

func (c *ConnectCmd[C]) Undo(g *core.Graph[C]) error {
	return ignoreGone(g.RemoveEdge(c.A, c.B))
}

func (c *ConnectCmd[C]) String() string { return fmt.Sprintf("addEdge(%d,%d)", c.A, c.B) }

// MoveNodeCmd repositions a node. Edge weights stay as they were.
type MoveNodeCmd[C any] struct {
	ID   int
	To   C
	from C
}

func (c *MoveNodeCmd[C]) Do(g *core.Graph[C]) error {
	n, ok := g.Node(c.ID)
	if !ok {
		return fmt.Errorf("%w: %d", core.ErrNodeNotFound, c.ID)
	}
	c.from = n.Coord

	return g.MoveNode(c.ID, c.To)
}

func (c *MoveNodeCmd[C]) Undo(g *core.Graph[C]) error {
	return ignoreGone(g.MoveNode(c.ID, c.from))
}

func (c *MoveNodeCmd[C]) String() string { return fmt.Sprintf("moveNode(%d)", c.ID) }

// ignoreGone treats an already-vanished target as successfully undone.
func ignoreGone(err error) error {
	if errors.Is(err, core.ErrNodeNotFound) {
		return nil
	}

	return err
}
