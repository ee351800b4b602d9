package common_test

import (
	"fmt"

	"github.com/katalvlaran/drills/common"
)

// ExampleElements intersects the two demo arrays with both kernels.
func ExampleElements() {
	a := []int{4, 3, 2}
	b := []int{2, 1, 7, 4}
	fmt.Println(common.ElementsBruteForce(a, b))
	fmt.Println(common.Elements(a, b))
	// Output:
	// [4 2]
	// [2 4]
}
