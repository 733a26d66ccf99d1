package bst

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Delimiter follows every key written by WriteKeys.
const Delimiter = "  "

// WriteKeys writes every key of seq to w, each followed by Delimiter.
// Line breaks are left to the caller.
func WriteKeys[K any](w io.Writer, seq iter.Seq[K]) error {
	bw := bufio.NewWriter(w)
	for k := range seq {
		if _, err := fmt.Fprint(bw, k); err != nil {
			return errors.Wrap(err, "writing key")
		}
		if _, err := bw.WriteString(Delimiter); err != nil {
			return errors.Wrap(err, "writing delimiter")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing keys")
}

// Sort writes keys to w in ascending order by way of a throwaway tree. It is
// O(n log n) for shuffled input and O(n²) for sorted or reversed input.
func Sort[K constraints.Ordered](w io.Writer, keys []K) error {
	return SortFunc(w, keys, orderedLess[K])
}

// SortFunc is Sort with a caller-supplied ordering.
func SortFunc[K any](w io.Writer, keys []K, less func(a, b K) bool) error {
	t, err := FromKeys(less, keys)
	if err != nil {
		return err
	}
	return WriteKeys(w, t.InOrder())
}
