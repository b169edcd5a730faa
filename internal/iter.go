package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqFlatten yields every element of every slice produced by seq, in order.
func IterSeqFlatten[K any, T any](seq iter.Seq2[K, []T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, vals := range seq {
			for _, val := range vals {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqMap applies fn to every element of seq.
func IterSeqMap[T any, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for val := range seq {
			if !yield(fn(val)) {
				return
			}
		}
	}
}
