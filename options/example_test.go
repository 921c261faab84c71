package options_test

import (
	"fmt"

	"github.com/nnikolov/fortune2d/options"
)

func ExampleWithEpsilon() {
	defaults := options.GeometryOptions{Epsilon: 1e-10}

	applied := options.ApplyGeometryOptions(defaults, options.WithEpsilon(1e-6))

	fmt.Printf("default epsilon: %.0e\n", defaults.Epsilon)
	fmt.Printf("applied epsilon: %.0e\n", applied.Epsilon)

	// Output:
	// default epsilon: 1e-10
	// applied epsilon: 1e-06
}
