package slist

type Comparer[T any] interface {
	Before(T) bool
}
