package seqs_test

import (
	"fmt"
	"slices"

	"seqkit/seqs"
)

func ExampleAdjacent() {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	windows, err := seqs.Adjacent(input, 3)
	if err != nil {
		panic(err)
	}

	for w := range windows {
		fmt.Println(w)
	}

	// Output:
	// [1 2 3]
	// [2 3 4]
	// [3 4 5]
}

func ExamplePairwise() {
	pairs, _ := seqs.Pairwise(slices.Values([]string{"a", "b", "c"}))

	for p := range pairs {
		fmt.Println(p.First, p.Second)
	}

	// Output:
	// a b
	// b c
}

func ExampleCombinations() {
	combos, err := seqs.Combinations(slices.Values([]string{"a", "b", "c", "d"}), 2)
	if err != nil {
		panic(err)
	}

	for c := range combos {
		fmt.Println(c)
	}

	// Output:
	// [a b]
	// [a c]
	// [a d]
	// [b c]
	// [b d]
	// [c d]
}

func ExampleSkipAt() {
	seq, err := seqs.SkipAt(slices.Values([]int{1, 2, 3}), 3)
	if err != nil {
		panic(err)
	}

	for v, err := range seq {
		if err != nil {
			fmt.Println("error:", err)
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
	// error: seqs.SkipAt: index 3: index out of range
}
