// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[K Ordered, V any] struct {
	sliceCap int
	keys     []K
	vals     []V
	callback func(iv, jv V, i, j int)
}

// Option represents the options that can be passed to NewMin and
// NewMax.
type Option[K Ordered, V any] func(*options[K, V])

// WithSliceCap sets the initial capacity of the slices used to store
// the keys and values.
func WithSliceCap[K Ordered, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial contents of the heap. The supplied slices
// are retained and reordered in place.
func WithData[K Ordered, V any](keys []K, vals []V) Option[K, V] {
	return func(o *options[K, V]) {
		if len(keys) != len(vals) {
			panic("keys and vals must be the same length")
		}
		o.keys = keys
		o.vals = vals
	}
}

// WithCallback provides a callback function that is invoked with the
// values and indices of the two elements that exchange places whenever
// the heap is reordered. Note that a callback is not sufficient to
// track removal of items and any application that requires such
// tracking must do so itself.
func WithCallback[K Ordered, V any](fn func(iv, jv V, i, j int)) Option[K, V] {
	return func(o *options[K, V]) {
		o.callback = fn
	}
}
