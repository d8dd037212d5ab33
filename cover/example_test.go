package cover_test

import (
	"fmt"

	"github.com/katalvlaran/chaingrid/cover"
	"github.com/katalvlaran/chaingrid/grid"
)

// ExampleBuilder_Build covers a 4×4 grid in one call and verifies the
// solution. Chain structure varies with the seed, so only stable facts are
// printed.
func ExampleBuilder_Build() {
	g, err := grid.New(4, 4)
	if err != nil {
		fmt.Println("grid:", err)
		return
	}
	b, err := cover.NewBuilder(g, 5, cover.DefaultOptions())
	if err != nil {
		fmt.Println("builder:", err)
		return
	}

	chains, err := b.Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	allValid := true
	for _, c := range chains {
		if !c.Valid() {
			allValid = false
		}
	}
	s := b.Stats()
	fmt.Printf("covered=%.0f%% chains valid=%v solution valid=%v\n",
		s.CoveragePercent, allValid, b.ValidateSolution())
	// Output:
	// covered=100% chains valid=true solution valid=true
}

// ExampleBuilder_Step drives the same search one step at a time, as a frame
// loop would, redrawing between steps.
func ExampleBuilder_Step() {
	g, err := grid.New(3, 3)
	if err != nil {
		fmt.Println("grid:", err)
		return
	}
	b, err := cover.NewBuilder(g, 4, cover.DefaultOptions())
	if err != nil {
		fmt.Println("builder:", err)
		return
	}

	b.Start()
	for b.Step() {
		// A real driver would render the grid here.
	}

	fmt.Printf("done=%v unconnected=%d\n", b.Done(), b.Stats().UnconnectedPoints)
	// Output:
	// done=true unconnected=0
}
