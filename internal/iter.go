package internal

import (
	"iter"
)

// Chunks splits the range [0, total) into consecutive spans of at most size
// elements, yielding the start and end of each span.
func Chunks(total int, size int) iter.Seq2[int, int] {
	return func(yield func(start, end int) bool) {
		if size <= 0 {
			size = total
		}
		for start := 0; start < total; start += size {
			end := min(start+size, total)
			if !yield(start, end) {
				return // Stop if the consumer stops
			}
		}
	}
}

// IterSeqFilter yields only the values of seq that keep accepts.
func IterSeqFilter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range seq {
			if !keep(val) {
				continue
			}
			if !yield(val) {
				return // Stop if the consumer stops
			}
		}
	}
}
