package ranked

import (
	"github.com/ddirect/slist"
)

type Item[R slist.Comparer[R], T any] struct {
	Value   T
	rank    R
	present bool
}

func (it *Item[R, T]) Rank() R {
	return it.rank
}

func (it *Item[R, T]) Present() bool {
	return it != nil && it.present
}
