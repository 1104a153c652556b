// Package xlist is a doubly linked list whose nodes are exposed to the caller so that it can
// choose where values go.
package xlist

import (
	"iter"

	"github.com/pkg/errors"
)

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	size  int
}

func (l *List[T]) Len() int        { return l.size }
func (l *List[T]) Front() *Node[T] { return l.front }
func (l *List[T]) Back() *Node[T]  { return l.back }

// Clear unlinks every node and empties the list. Nodes held by the caller are left detached.
func (l *List[T]) Clear() {
	for node := l.front; node != nil; {
		next := node.next
		node.prev = nil
		node.next = nil
		node = next
	}
	l.front = nil
	l.back = nil
	l.size = 0
}

func (l *List[T]) PushFront(value T) *Node[T] {
	if l.front == nil {
		return l.pushEmpty(value)
	}
	return l.InsertBefore(value, l.front)
}

func (l *List[T]) PushBack(value T) *Node[T] {
	if l.back == nil {
		return l.pushEmpty(value)
	}
	node := &Node[T]{
		prev:  l.back,
		Value: value,
	}
	l.back.next = node
	l.back = node
	l.size++
	return node
}

// InsertBefore links a new node holding value immediately before mark, which must be in l.
func (l *List[T]) InsertBefore(value T, mark *Node[T]) *Node[T] {
	node := &Node[T]{
		prev:  mark.prev,
		next:  mark,
		Value: value,
	}
	if mark.prev != nil {
		mark.prev.next = node
	} else {
		l.front = node
	}
	mark.prev = node
	l.size++
	return node
}

// Remove unlinks node, which must be in l.
func (l *List[T]) Remove(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.front = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.back = node.prev
	}

	node.prev = nil
	node.next = nil
	l.size--
}

// All iterates over the values in l from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.front; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward iterates over the values in l from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.back; node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Check walks l in both directions and returns an error describing the first broken link it
// finds, or nil if the list is consistent.
func (l *List[T]) Check() error {
	if l.size == 0 {
		if l.front != nil || l.back != nil {
			return errors.New("empty list has a front or back")
		}
		return nil
	}
	if l.front == nil || l.back == nil {
		return errors.Errorf("list of length %d is missing its front or back", l.size)
	}
	if l.front.prev != nil {
		return errors.New("front has a prev link")
	}
	if l.back.next != nil {
		return errors.New("back has a next link")
	}

	n := 0
	var last *Node[T]
	for node := l.front; node != nil; node = node.next {
		if node.prev != last {
			return errors.Errorf("node %d: prev does not point at node %d", n, n-1)
		}
		last = node
		n++
		if n > l.size {
			return errors.Errorf("forward walk is longer than length %d", l.size)
		}
	}
	if n != l.size {
		return errors.Errorf("forward walk found %d nodes, length is %d", n, l.size)
	}
	if last != l.back {
		return errors.New("forward walk does not end at back")
	}

	n = 0
	for node := l.back; node != nil; node = node.prev {
		n++
		if n > l.size {
			return errors.Errorf("backward walk is longer than length %d", l.size)
		}
		if node.prev == nil && node != l.front {
			return errors.New("backward walk does not end at front")
		}
	}
	if n != l.size {
		return errors.Errorf("backward walk found %d nodes, length is %d", n, l.size)
	}
	return nil
}

func (l *List[T]) pushEmpty(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.front = node
	l.back = node
	l.size = 1
	return node
}

type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	Value T
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }
