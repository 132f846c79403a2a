package shared

import (
	"errors"

	"google.golang.org/api/iterator"
)

// Iterator is satisfied by every paginated iterator in the GCP SDK, e.g.
// *logging.SinkIterator is an Iterator[*loggingpb.LogSink]. Pagination is
// handled by the iterator, Next returns iterator.Done once exhausted
type Iterator[T any] interface {
	Next() (T, error)
}

// ForEach drains the iterator, calling fn for each item in the order the
// provider returns them. It stops at the first error from either the
// iterator or fn
func ForEach[T any](it Iterator[T], fn func(item T) error) error {
	for {
		item, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}
}

// SliceIterator iterates over a fixed slice, optionally failing with Err once
// the items are exhausted. It is used for APIs that return a single page and
// in tests
type SliceIterator[T any] struct {
	Items []T
	Err   error

	pos int
}

// NewSliceIterator returns an iterator over the given items
func NewSliceIterator[T any](items ...T) *SliceIterator[T] {
	return &SliceIterator[T]{Items: items}
}

func (s *SliceIterator[T]) Next() (T, error) {
	var zero T

	if s.pos < len(s.Items) {
		item := s.Items[s.pos]
		s.pos++
		return item, nil
	}

	if s.Err != nil {
		return zero, s.Err
	}

	return zero, iterator.Done
}
