package slist

import (
	"errors"
	"fmt"
)

var (
	ErrEndCursor   = errors.New("slist: end cursor")
	ErrBeforeBegin = errors.New("slist: before-begin cursor")
	ErrNoSuccessor = errors.New("slist: no element after position")
)

type node[T any] struct {
	value    T
	next     *node[T]
	sentinel bool
}

func (n *node[T]) successor() *node[T] {
	if n == nil {
		panic(fmt.Errorf("%w: cannot advance", ErrEndCursor))
	}
	return n.next
}

func (n *node[T]) element() *T {
	if n == nil {
		panic(fmt.Errorf("%w: cannot dereference", ErrEndCursor))
	}
	if n.sentinel {
		panic(fmt.Errorf("%w: cannot dereference", ErrBeforeBegin))
	}
	return &n.value
}
