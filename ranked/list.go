package ranked

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ddirect/slist"
)

var ErrNotPresent = errors.New("ranked: item not present")

// ranked.List keeps items sorted by rank; items with the same rank keep their insertion order.
// Insertion and deletion are O(n), First and DeleteFirst are O(1).
// It is not safe to call any method concurrently from different goroutines.
type List[R slist.Comparer[R], T any] struct {
	l slist.List[*Item[R, T]]
}

type position[R slist.Comparer[R], T any] = slist.Iterator[*Item[R, T]]

func (r *List[R, T]) Len() int {
	return r.l.Len()
}

func (r *List[R, T]) Clear() {
	for item := range r.l.Values() {
		item.present = false
	}
	r.l.Clear()
}

func (r *List[R, T]) Insert(rank R, value T) *Item[R, T] {
	item := &Item[R, T]{
		Value: value,
		rank:  rank,
	}
	r.link(item)
	return item
}

// First returns the item with the lowest rank, or nil if the list is empty.
func (r *List[R, T]) First() *Item[R, T] {
	item, _ := r.l.Front()
	return item
}

func (r *List[R, T]) Values() iter.Seq[*Item[R, T]] {
	return r.l.Values()
}

func (r *List[R, T]) RemoveOrdered() iter.Seq[*Item[R, T]] {
	return func(yield func(*Item[R, T]) bool) {
		for r.Len() > 0 {
			item := r.First()
			if !yield(item) {
				return
			}
			r.Delete(item)
		}
	}
}

func (r *List[R, T]) DeleteFirst() {
	r.Delete(r.First())
}

func (r *List[R, T]) Delete(item *Item[R, T]) {
	r.unlink(item)
}

func (r *List[R, T]) SetRank(item *Item[R, T], rank R) {
	r.unlink(item)
	item.rank = rank
	r.link(item)
}

func (r *List[R, T]) link(item *Item[R, T]) {
	prev := r.l.BeforeBegin()
	for it := r.l.Begin(); !it.IsEnd() && !item.rank.Before(it.Value().rank); it.Next() {
		prev = it
	}
	r.l.InsertAfter(prev, item)
	item.present = true
}

func (r *List[R, T]) unlink(item *Item[R, T]) {
	if !item.Present() {
		panic(fmt.Errorf("%w: cannot delete", ErrNotPresent))
	}
	prev := r.predecessor(item)
	if prev.IsEnd() {
		panic(fmt.Errorf("%w: item belongs to another list", ErrNotPresent))
	}
	r.l.EraseAfter(prev)
	item.present = false
}

func (r *List[R, T]) predecessor(item *Item[R, T]) position[R, T] {
	prev := r.l.BeforeBegin()
	for it := r.l.Begin(); !it.IsEnd(); it.Next() {
		if it.Value() == item {
			return prev
		}
		prev = it
	}
	return position[R, T]{}
}
