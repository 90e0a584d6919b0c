package bucketsort

import (
	"golang.org/x/exp/constraints"
)

// InsertionSort orders b in place. It is stable and O(len(b)^2) in the
// worst case, which is what a single overfull bucket degrades to.
func InsertionSort[F constraints.Float](b []F) {
	for i := 1; i < len(b); i++ {
		key := b[i]
		j := i - 1
		for j >= 0 && b[j] > key {
			b[j+1] = b[j]
			j--
		}
		b[j+1] = key
	}
}
