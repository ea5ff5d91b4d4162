package seq

// Iterator is a lazy, pull-based iterator over sequence elements.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// FromSeq creates an iterator over the sequence. The Seq is immutable, so the
// iterator reads it directly without copying.
func FromSeq[T any](s Seq[T]) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(s) {
				var zero T
				return zero, false
			}
			v := s[idx]
			idx++
			return v, true
		},
	}
}

// MapIter lazily transforms iterator values.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
	}
}

// FilterIter keeps values satisfying predicate.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
	}
}

// TakeIter returns an iterator that yields at most n elements.
func TakeIter[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		},
	}
}

// DropIter skips the first n elements.
func DropIter[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				for i := 0; i < n; i++ {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
				skipped = true
			}
			return it.Next()
		},
	}
}

// Collect exhausts the iterator and gathers its values into a Seq.
func Collect[T any](it Iterator[T]) Seq[T] {
	out := Seq[T]{}
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
