package token_test

import (
	"fmt"

	"github.com/fernwood/skillgraph/token"
)

// ExampleExpand demonstrates range expansion in both directions.
func ExampleExpand() {
	fmt.Println(token.Expand("ADT 2-5"))
	fmt.Println(token.Expand("ADT 5-2"))
	// Output:
	// [ADT 2 ADT 3 ADT 4 ADT 5]
	// [ADT 5 ADT 4 ADT 3 ADT 2]
}

// ExampleExpand_diagnostics shows the skip hook observing a dropped token.
func ExampleExpand_diagnostics() {
	ids := token.Expand("see instructor", token.WithOnSkip(func(tok, reason string) {
		fmt.Printf("skipped %q: %s\n", tok, reason)
	}))
	fmt.Println(len(ids))
	// Output:
	// skipped "see instructor": unrecognized token shape
	// 0
}

// ExampleSplitOr splits the two-way OR wrapper; each side is expanded
// independently by the caller.
func ExampleSplitOr() {
	left, right, ok := token.SplitOr("ADT 3 (or ADT 4)")
	fmt.Println(ok, left, "|", right)
	// Output:
	// true ADT 3 | ADT 4
}
