package fifo

import (
	"iter"

	"github.com/ddirect/slist"
)

// Fifo is a queue backed by a singly-linked list. The zero value is an empty queue ready to use.
// It must not be copied after first use.
type Fifo[T any] struct {
	l    slist.List[T]
	tail slist.Iterator[T] // last element, or before-begin when empty; zero until first use
}

func (f *Fifo[T]) Enqueue(t T) {
	if f.tail.IsEnd() {
		f.tail = f.l.BeforeBegin()
	}
	f.tail = f.l.InsertAfter(f.tail, t)
}

func (f *Fifo[T]) Dequeue() (t T, ok bool) {
	if t, ok = f.l.Front(); ok {
		f.l.PopFront()
		if f.l.IsEmpty() {
			f.tail = f.l.BeforeBegin()
		}
	}
	return
}

func (f *Fifo[T]) Peek() (T, bool) {
	return f.l.Front()
}

func (f *Fifo[T]) Len() int {
	return f.l.Len()
}

func (f *Fifo[T]) Values() iter.Seq[T] {
	return f.l.Values()
}
