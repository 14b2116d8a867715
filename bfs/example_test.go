package bfs_test

import (
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/bfs"
	"github.com/Roguelazer/advent-of-code-2025/densegrid"
)

// ExampleBFS floods a small maze and prints step counts per cell.
func ExampleBFS() {
	g, _ := densegrid.FromText("S.#\n#..\n...\n", func(r rune) rune { return r })
	start, _ := densegrid.Find(g, 'S')

	res, err := bfs.BFS(g, start,
		bfs.WithFilterNeighbor(func(_, next densegrid.Point) bool { return g.At(next) != '#' }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for row := range res.Depth.Rows() {
		fmt.Println(row)
	}
	// Output:
	// [0 1 ∞]
	// [∞ 2 3]
	// [4 3 4]
}
