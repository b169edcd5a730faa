package micro

import (
	"iter"
)

// Product composes every left aggregate with every right aggregate.
//
// Rejected merges are dropped. Merges sharing an opcode are deduplicated:
// the first merge to reach a code fixes its position in the result, and
// the last merge to reach it (left-major, then right, in slice order)
// supplies the value.
func (tbl *Table) Product(left, right []Op) (ops []Op) {
	index := map[uint32]int{}

	for _, a := range left {
		for _, b := range right {
			op, ok := tbl.Compose(a, b)
			if !ok {
				continue
			}
			if n, found := index[op.Code]; found {
				ops[n] = op
				continue
			}
			index[op.Code] = len(ops)
			ops = append(ops, op)
		}
	}

	return
}

// Closure yields every non-empty combination group, by size.
//
// Each size is the Product of the previous group with the base set; sizes
// run from 2 up to, but excluding, the number of primitives. Groups are
// never filtered against earlier ones.
func (tbl *Table) Closure() iter.Seq2[int, []Op] {
	return func(yield func(int, []Op) bool) {
		ops := tbl.Primitives
		for size := 2; size < len(tbl.Primitives); size++ {
			ops = tbl.Product(ops, tbl.Primitives)
			if len(ops) == 0 {
				continue
			}
			if !yield(size, ops) {
				return
			}
		}
	}
}
