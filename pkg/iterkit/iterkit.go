// Package iterkit provides tooling to work with lazy sequences.
//
// An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// The consumer can traverse the values one at a time, on demand,
// without the producer precomputing a backing collection.
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"io"
	"iter"
	"slices"
)

func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// KV is a key value pair, the collected element form of an iter.Seq2.
type KV[K, V any] struct {
	K K
	V V
}

func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	if i == nil {
		return nil
	}
	var kvs []KV[K, V]
	for k, v := range i {
		kvs = append(kvs, KV[K, V]{K: k, V: v})
	}
	return kvs
}

func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene,
	// for all other cases where the underlying io is handled on a higher level, it should simply return nil.
	io.Closer
	// Err return the error cause.
	Err() error
}

// ToPullIter converts a push style sequence into a pull style iterator.
// Each Next call resumes the producer for exactly one element,
// and Close abandons the remainder of the sequence.
func ToPullIter[T any](i iter.Seq[T]) PullIter[T] {
	next, stop := iter.Pull(i)
	return &pullIter[T]{next: next, stop: stop}
}

func CollectPullIter[T any](i PullIter[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	defer i.Close()
	var vs []T
	for i.Next() {
		vs = append(vs, i.Value())
	}
	if err := i.Err(); err != nil {
		return vs, err
	}
	return vs, i.Close()
}

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
	val  T
	done bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, ok := i.next()
	if !ok {
		return false
	}
	i.val = v
	return true
}

func (i *pullIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error {
	return nil
}

func (i *pullIter[T]) Value() T {
	return i.val
}
