package polycube_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polycubes/cache"
	"github.com/katalvlaran/polycubes/polycube"
)

// ExampleRun prints the number of polycubes for the first six sizes, caching
// each level in memory so later sizes resume from earlier ones.
func ExampleRun() {
	store := cache.NewMemory()
	for n := 1; n <= 6; n++ {
		res, err := polycube.Run(context.Background(), n, polycube.WithCache(store))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("n=%d: %d\n", n, res.Count)
	}

	// Output:
	// n=1: 1
	// n=2: 1
	// n=3: 2
	// n=4: 8
	// n=5: 29
	// n=6: 166
}

// ExampleGenerate shows the two trominoes as Y×Z layers per x.
func ExampleGenerate() {
	shapes, _ := polycube.Generate(context.Background(), 3)
	for _, g := range shapes {
		fmt.Println(g.Dims())
		fmt.Print(g)
	}

	// Output:
	// [3 1 1]
	// #
	//
	// #
	//
	// #
	// [2 2 1]
	// #
	// #
	//
	// .
	// #
}
