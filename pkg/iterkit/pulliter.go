package iterkit

import (
	"io"

	"github.com/adamluzsi/strsplit/pkg/errorkit"
)

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// FromPullIter turns a PullIter into a SingleUseSeq.
// The PullIter is closed when the iteration finish or when the consumer stops early.
// Err is checked once all values are consumed and the cause is passed to the optional errFunc.
func FromPullIter[T any](itr PullIter[T], errFunc func(error)) SingleUseSeq[T] {
	return func(yield func(T) bool) {
		var err error
		defer func() {
			errorkit.Finish(&err, itr.Close)
			if err != nil && errFunc != nil {
				errFunc(err)
			}
		}()
		for itr.Next() {
			if !yield(itr.Value()) {
				return
			}
		}
		err = itr.Err()
	}
}

// CollectPullIter drains the PullIter into a slice, then close it.
func CollectPullIter[T any](itr PullIter[T]) ([]T, error) {
	if itr == nil {
		return nil, nil
	}
	var vs = make([]T, 0)
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	var errs []error
	if err := itr.Err(); err != nil {
		errs = append(errs, err)
	}
	if err := itr.Close(); err != nil {
		errs = append(errs, err)
	}
	return vs, errorkit.Merge(errs...)
}
