package seqs

// Pair holds two elements in source order.
type Pair[T any] struct {
	First  T
	Second T
}

// Quintuple holds five consecutive elements in source order.
type Quintuple[T any] struct {
	First  T
	Second T
	Third  T
	Fourth T
	Fifth  T
}
