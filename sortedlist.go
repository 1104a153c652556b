// Package sortedlist is an in-memory sorted set of strings kept in a doubly linked list.
package sortedlist

import (
	"iter"
	"slices"
	"strings"

	"github.com/bradenaw/juniper/xslices"
	"github.com/pkg/errors"

	"github.com/bradenaw/sortedlist/internal/xlist"
)

var (
	// ErrAlreadyPresent is returned by Insert when the value is already in the list.
	ErrAlreadyPresent = errors.New("already in the list")
	// ErrNotFound is returned by Delete when the value is not in the list.
	ErrNotFound = errors.New("not in the list")
)

// List is a sequence of unique strings kept in ascending byte-wise order.
//
// Every operation is a linear walk from the head: there is no index. Member and Delete stop
// walking as soon as they pass the position the value would occupy.
//
// The zero value is an empty list ready to use. List's methods may not be called concurrently.
type List struct {
	l xlist.List[string]
}

func New() *List {
	return &List{}
}

// Insert adds value to the list at the position that keeps it sorted. If value is already in
// the list, Insert returns ErrAlreadyPresent and the list is unchanged.
func (s *List) Insert(value string) error {
	if s.Member(value) {
		return ErrAlreadyPresent
	}

	front := s.l.Front()
	switch {
	case front == nil:
		s.l.PushFront(value)
	case value < front.Value:
		s.l.PushFront(value)
	case value > s.l.Back().Value:
		s.l.PushBack(value)
	default:
		// Strictly between front and back, so the walk always stops on a node.
		node := front
		for node.Value < value {
			node = node.Next()
		}
		s.l.InsertBefore(value, node)
	}
	return nil
}

// Member returns true if value is in the list.
func (s *List) Member(value string) bool {
	return s.find(value) != nil
}

// Delete removes value from the list. If value is not in the list, Delete returns ErrNotFound
// and the list is unchanged.
func (s *List) Delete(value string) error {
	node := s.find(value)
	if node == nil {
		return ErrNotFound
	}
	s.l.Remove(node)
	return nil
}

// InsertAll inserts each of values in order, returning the outcome of each Insert.
func (s *List) InsertAll(values ...string) []error {
	return xslices.Map(values, s.Insert)
}

// DeleteAll deletes each of values in order, returning the outcome of each Delete.
func (s *List) DeleteAll(values ...string) []error {
	return xslices.Map(values, s.Delete)
}

// Clear removes every value from the list. Clearing an empty list does nothing.
func (s *List) Clear() { s.l.Clear() }

func (s *List) Len() int { return s.l.Len() }

// Head returns the smallest value in the list, or false if the list is empty.
func (s *List) Head() (string, bool) {
	if node := s.l.Front(); node != nil {
		return node.Value, true
	}
	return "", false
}

// Tail returns the largest value in the list, or false if the list is empty.
func (s *List) Tail() (string, bool) {
	if node := s.l.Back(); node != nil {
		return node.Value, true
	}
	return "", false
}

// All iterates over the values in ascending order. The list must not be modified during
// iteration.
func (s *List) All() iter.Seq[string] { return s.l.All() }

// Backward iterates over the values in descending order. The list must not be modified during
// iteration.
func (s *List) Backward() iter.Seq[string] { return s.l.Backward() }

// Strings returns the values in ascending order.
func (s *List) Strings() []string {
	return slices.Collect(s.All())
}

// String formats the list as "list = " followed by each value and a space.
func (s *List) String() string {
	var sb strings.Builder
	sb.WriteString("list = ")
	for v := range s.All() {
		sb.WriteString(v)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Check verifies the links of the list and that its values are strictly ascending, returning
// an error describing the first problem found.
func (s *List) Check() error {
	if err := s.l.Check(); err != nil {
		return err
	}
	i := 0
	for node := s.l.Front(); node != nil && node.Next() != nil; node = node.Next() {
		if node.Value >= node.Next().Value {
			return errors.Errorf(
				"values at %d and %d out of order: %q, %q",
				i, i+1, node.Value, node.Next().Value,
			)
		}
		i++
	}
	return nil
}

// find returns the node holding value, walking from the front and giving up at the first
// larger value.
func (s *List) find(value string) *xlist.Node[string] {
	for node := s.l.Front(); node != nil && node.Value <= value; node = node.Next() {
		if node.Value == value {
			return node
		}
	}
	return nil
}
