// Package dijkstra_test provides examples demonstrating grid shortest paths.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/densegrid"
	"github.com/Roguelazer/advent-of-code-2025/dijkstra"
)

// ExampleDijkstra walks a small maze where '#' is a wall.
func ExampleDijkstra() {
	g, err := densegrid.FromText("S.#\n#..\n..E\n", func(r rune) rune { return r })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := densegrid.Find(g, 'S')
	end, _ := densegrid.Find(g, 'E')

	open := func(g *densegrid.Grid[rune], p densegrid.Point) bool { return g.At(p) != '#' }
	dist, prev, err := dijkstra.Dijkstra(g, start, open, dijkstra.UnitCost[rune, int])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := dijkstra.PathTo(prev, start, end)
	fmt.Println(dist.At(end), path)
	fmt.Println(dist.At(densegrid.Point{X: 2, Y: 0}))
	// Output:
	// 4 [(0, 0) (1, 0) (1, 1) (1, 2) (2, 2)]
	// ∞
}

// ExampleWithMaxDistance caps exploration at two steps.
func ExampleWithMaxDistance() {
	g := densegrid.New(densegrid.Point{}, densegrid.Point{X: 4}, 0)
	dist, _, _ := dijkstra.Dijkstra(g, densegrid.Point{}, nil,
		dijkstra.UnitCost[int, int],
		dijkstra.WithMaxDistance(2),
	)
	for _, d := range dist.All() {
		fmt.Print(d, " ")
	}
	fmt.Println()
	// Output: 0 1 2 ∞ ∞
}
