package slist

// Cursor is a position in a List. It is implemented by Iterator and ConstIterator.
type Cursor[T any] interface {
	cursorNode() *node[T]
}

func nodeOf[T any](c Cursor[T]) *node[T] {
	if c == nil {
		return nil
	}
	return c.cursorNode()
}

type cursor[T any] struct {
	n *node[T]
}

func (c cursor[T]) cursorNode() *node[T] {
	return c.n
}

// IsEnd reports whether the cursor is past the last element. The zero cursor is an end cursor.
func (c cursor[T]) IsEnd() bool {
	return c.n == nil
}

// Equal reports whether both cursors refer to the same position, regardless of their variant.
func (c cursor[T]) Equal(o Cursor[T]) bool {
	return c.n == nodeOf(o)
}

// Iterator is a forward cursor giving write access to the element it refers to.
// It stays valid until the element it refers to is removed from the list.
type Iterator[T any] struct {
	cursor[T]
}

// Next moves the iterator to the following element and returns the new position.
func (it *Iterator[T]) Next() Iterator[T] {
	it.n = it.n.successor()
	return *it
}

// Advance moves the iterator to the following element and returns the previous position.
func (it *Iterator[T]) Advance() Iterator[T] {
	old := *it
	it.n = it.n.successor()
	return old
}

func (it Iterator[T]) Value() T {
	return *it.n.element()
}

func (it Iterator[T]) Ptr() *T {
	return it.n.element()
}

func (it Iterator[T]) Set(v T) {
	*it.n.element() = v
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a forward cursor giving read-only access to the element it refers to.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it *ConstIterator[T]) Next() ConstIterator[T] {
	it.n = it.n.successor()
	return *it
}

func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	old := *it
	it.n = it.n.successor()
	return old
}

func (it ConstIterator[T]) Value() T {
	return *it.n.element()
}
