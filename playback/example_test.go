package playback_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/playback"
)

// ExamplePlayer replays a traversal order one node at a time.
func ExamplePlayer() {
	p := playback.NewPlayer([]int{1, 2, 4, 3})
	_ = p.Run(context.Background(), 0, func(id int) error {
		fmt.Println("visit", id, "shown so far", p.Played())
		return nil
	})
	// Output:
	// visit 1 shown so far [1]
	// visit 2 shown so far [1 2]
	// visit 4 shown so far [1 2 4]
	// visit 3 shown so far [1 2 4 3]
}
