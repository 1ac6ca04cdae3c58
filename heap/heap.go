// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides binary heaps over ordered keys with arbitrary
// associated values.
package heap

import "golang.org/x/exp/constraints"

// Ordered represents the set of types that can be used as heap keys.
type Ordered interface {
	constraints.Ordered
}

// T implements a binary heap of key/value pairs using the sift
// operations of the standard library's container/heap package. Keys and
// Vals are exported for direct inspection but should only be reordered
// via the methods below.
type T[K Ordered, V any] struct {
	Keys []K
	Vals []V

	max      bool
	callback func(iv, jv V, i, j int)
}

// NewMin returns a heap whose Pop returns keys in ascending order.
func NewMin[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	return newT(false, opts)
}

// NewMax returns a heap whose Pop returns keys in descending order.
func NewMax[K Ordered, V any](opts ...Option[K, V]) *T[K, V] {
	return newT(true, opts)
}

func newT[K Ordered, V any](max bool, opts []Option[K, V]) *T[K, V] {
	var o options[K, V]
	o.sliceCap = 1
	for _, fn := range opts {
		fn(&o)
	}
	h := &T[K, V]{max: max, callback: o.callback}
	if o.keys != nil && o.vals != nil {
		h.Keys, h.Vals = o.keys, o.vals
		h.heapify()
		return h
	}
	h.Keys = make([]K, 0, o.sliceCap)
	h.Vals = make([]V, 0, o.sliceCap)
	return h
}

func (h *T[K, V]) heapify() {
	n := len(h.Keys)
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i, n)
	}
}

// Len returns the number of items stored in the heap.
func (h *T[K, V]) Len() int {
	return len(h.Keys)
}

// Push adds the key/value pair to the heap.
func (h *T[K, V]) Push(k K, v V) {
	h.Keys = append(h.Keys, k)
	h.Vals = append(h.Vals, v)
	h.siftUp(len(h.Keys) - 1)
}

// Peek returns the top key/value pair without removing it, that is, the
// smallest key for a heap created by NewMin and the largest for one
// created by NewMax.
func (h *T[K, V]) Peek() (K, V) {
	return h.Keys[0], h.Vals[0]
}

// Pop removes and returns the top key/value pair.
func (h *T[K, V]) Pop() (K, V) {
	n := len(h.Keys) - 1
	h.swap(0, n)
	h.siftDown(0, n)
	k, v := h.Keys[n], h.Vals[n]
	h.Keys, h.Vals = h.Keys[:n], h.Vals[:n]
	return k, v
}

// Remove removes and returns the key/value pair at index i.
func (h *T[K, V]) Remove(i int) (K, V) {
	n := len(h.Keys) - 1
	if n != i {
		h.swap(i, n)
		if !h.siftDown(i, n) {
			h.siftUp(i)
		}
	}
	k, v := h.Keys[n], h.Vals[n]
	h.Keys, h.Vals = h.Keys[:n], h.Vals[:n]
	return k, v
}

// Fix re-establishes the heap ordering after the key at index i has
// changed.
func (h *T[K, V]) Fix(i int) {
	if !h.siftDown(i, len(h.Keys)) {
		h.siftUp(i)
	}
}

func (h *T[K, V]) less(i, j int) bool {
	if h.max {
		return h.Keys[i] > h.Keys[j]
	}
	return h.Keys[i] < h.Keys[j]
}

func (h *T[K, V]) swap(i, j int) {
	h.Keys[i], h.Keys[j] = h.Keys[j], h.Keys[i]
	h.Vals[i], h.Vals[j] = h.Vals[j], h.Vals[i]
	if h.callback != nil {
		h.callback(h.Vals[i], h.Vals[j], i, j)
	}
}

func (h *T[K, V]) siftUp(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *T[K, V]) siftDown(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
