package point_test

import (
	"fmt"

	"github.com/Roguelazer/advent-of-code-2025/point"
)

// ExamplePoint_LineTo walks a vertical segment upwards.
func ExamplePoint_LineTo() {
	for p := range point.New(2, 3).LineTo(point.New(2, 0)) {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output:
	// (2, 3) (2, 2) (2, 1) (2, 0)
}

// ExamplePoint_RotateBy turns a heading clockwise around the compass.
// With Y growing downwards, +x is east and +y is south.
func ExamplePoint_RotateBy() {
	heading := point.New(1, 0)
	for i := 0; i < 4; i++ {
		fmt.Print(heading, " ")
		heading = heading.RotateBy(point.CW)
	}
	fmt.Println()
	// Output:
	// (1, 0) (0, 1) (-1, 0) (0, -1)
}
