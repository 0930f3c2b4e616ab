/*
Package seqs provides lazy sequence operations over Go 1.23+ iterators (iter.Seq).

It covers:

  - **Windowing**: [Adjacent] for windows of any length, with the fixed-size
    forms [Pairwise] and [Quintuples].
  - **Pairs and Combinations**: [Pairs] for every unordered pair and
    [Combinations] for every k-element subsequence, both in index order.
  - **Element Removal**: [SkipAt] and [SkipAtOrDefault].
  - **Folds**: [Sum], [Min], [Max], [Product], [And], [Or], [Xor].

# Laziness

Nothing is read from the source until the returned sequence is ranged over,
and iteration state is created fresh on every range, so a result can be
ranged over again whenever its source can. Breaking out of a loop stops the
source as well.

	windows, err := seqs.Adjacent(slices.Values(data), 3)
	if err != nil {
		return err
	}
	for w := range windows {
		fmt.Println(w)
	}

# Error Handling

Invalid arguments (a nil source, a negative length) are reported when the
operation is called, as an [*ArgumentError] wrapping one of the package
sentinels such as [ErrNilSource]. Errors that can only be detected while
iterating are delivered through an iter.Seq2[T, error], following the
"Try" convention: see [SkipAt].
*/
package seqs
