package slist

import (
	"fmt"
	"iter"
	"slices"
)

// slist.List is a singly-linked list. The zero value is an empty list ready to use.
// A List must not be copied by value once used: use Clone or Assign instead.
// It is not safe to call any method concurrently from different goroutines.
type List[T any] struct {
	head node[T] // sentinel: head.next is the first element
	size int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Of creates a list holding values in the same order.
func Of[T any](values ...T) *List[T] {
	return FromSeq(slices.Values(values))
}

func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.AssignSeq(seq)
	return l
}

func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.Assign(l)
	return c
}

// Assign replaces the content of l with a copy of src. Cursors into the previous content of l become invalid.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.AssignSeq(src.Values())
}

// AssignSeq replaces the content of l with the values of seq. The new chain is built aside and swapped in
// at the end, so l is left untouched if seq panics.
func (l *List[T]) AssignSeq(seq iter.Seq[T]) {
	var tmp List[T]
	last := &tmp.head
	for v := range seq {
		last.next = &node[T]{value: v}
		last = last.next
		tmp.size++
	}
	l.Swap(&tmp)
	tmp.Clear()
}

// Swap exchanges the elements of l and o in constant time. Cursors to elements follow the elements,
// cursors returned by BeforeBegin stay with their list.
func (l *List[T]) Swap(o *List[T]) {
	l.head.next, o.head.next = o.head.next, l.head.next
	l.size, o.size = o.size, l.size
}

func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{l.head.next}}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{l.head.next}}
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// BeforeBegin returns a cursor positioned before the first element. It cannot be dereferenced,
// but it can be advanced (yielding Begin) and used with InsertAfter and EraseAfter to work on the front.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{l.sentinel()}}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{l.sentinel()}}
}

func (l *List[T]) sentinel() *node[T] {
	l.head.sentinel = true
	return &l.head
}

func (l *List[T]) Front() (t T, ok bool) {
	if n := l.head.next; n != nil {
		t = n.value
		ok = true
	}
	return
}

func (l *List[T]) PushFront(t T) {
	l.insertAfter(&l.head, t)
}

// PopFront removes the first element, if any.
func (l *List[T]) PopFront() {
	if l.head.next != nil {
		l.eraseAfter(&l.head)
	}
}

// InsertAfter inserts t right after pos and returns an iterator to it. pos must not be an end cursor.
// No cursor is invalidated.
func (l *List[T]) InsertAfter(pos Cursor[T], t T) Iterator[T] {
	n := nodeOf(pos)
	if n == nil {
		panic(fmt.Errorf("%w: cannot insert after", ErrEndCursor))
	}
	return Iterator[T]{cursor[T]{l.insertAfter(n, t)}}
}

// EraseAfter removes the element right after pos and returns an iterator to the element which follows pos
// afterwards. Only cursors to the removed element are invalidated.
func (l *List[T]) EraseAfter(pos Cursor[T]) Iterator[T] {
	n := nodeOf(pos)
	if n == nil {
		panic(fmt.Errorf("%w: cannot erase after", ErrEndCursor))
	}
	if n.next == nil {
		panic(ErrNoSuccessor)
	}
	l.eraseAfter(n)
	return Iterator[T]{cursor[T]{n.next}}
}

// Clear removes all the elements. All cursors except the ones returned by BeforeBegin are invalidated.
func (l *List[T]) Clear() {
	for l.head.next != nil {
		l.eraseAfter(&l.head)
	}
}

func (l *List[T]) insertAfter(n *node[T], t T) *node[T] {
	n.next = &node[T]{
		value: t,
		next:  n.next,
	}
	l.size++
	return n.next
}

func (l *List[T]) eraseAfter(n *node[T]) {
	victim := n.next
	n.next = victim.next
	victim.next = nil // detach, so stale cursors cannot walk back into the list
	l.size--
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Slice() []T {
	return slices.AppendSeq(make([]T, 0, l.size), l.Values())
}
