// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fibheap

type options[K Ordered, V any] struct {
	sliceCap int
	keys     []K
	vals     []V
}

// Option represents the options that can be passed to New.
type Option[K Ordered, V any] func(*options[K, V])

// WithSliceCap sets the initial capacity of the arena used to hold the
// heap's elements.
func WithSliceCap[K Ordered, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The slices themselves
// are not retained.
func WithData[K Ordered, V any](keys []K, vals []V) Option[K, V] {
	return func(o *options[K, V]) {
		if len(keys) != len(vals) {
			panic("keys and vals must be the same length")
		}
		o.keys = keys
		o.vals = vals
	}
}
