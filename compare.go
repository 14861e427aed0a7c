package slist

import "cmp"

func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc reports whether a and b have the same length and pairwise equal elements according to eq.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}
	i, j := a.head.next, b.head.next
	for ; i != nil && j != nil; i, j = i.next, j.next {
		if !eq(i.value, j.value) {
			return false
		}
	}
	return i == nil && j == nil
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// Less compares a and b lexicographically using the < operator on the elements.
// A list which is a proper prefix of the other is less.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, func(x, y T) bool {
		return x < y
	})
}

// LessFunc is like Less but uses less to order elements, which must be a strict weak order.
func LessFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	i, j := a.head.next, b.head.next
	for ; i != nil && j != nil; i, j = i.next, j.next {
		if less(i.value, j.value) {
			return true
		}
		if less(j.value, i.value) {
			return false
		}
	}
	return i == nil && j != nil
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Before orders lists lexicographically using the Before method of the elements.
func Before[T Comparer[T]](a, b *List[T]) bool {
	return LessFunc(a, b, func(x, y T) bool {
		return x.Before(y)
	})
}

// Compare returns -1, 0 or +1 depending on whether a is lexicographically less than, equal to
// or greater than b. Elements are compared with cmp.Compare.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func CompareFunc[T1, T2 any](a *List[T1], b *List[T2], cmp func(T1, T2) int) int {
	i, j := a.head.next, b.head.next
	for ; i != nil && j != nil; i, j = i.next, j.next {
		if c := cmp(i.value, j.value); c != 0 {
			return c
		}
	}
	switch {
	case i == nil && j == nil:
		return 0
	case i == nil:
		return -1
	}
	return 1
}
