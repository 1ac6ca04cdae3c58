// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fibheap provides a mergeable priority queue for ordered keys
// with associated values, implemented as a Fibonacci heap as described
// in https://doi.org/10.1145/28869.28874.
package fibheap

import (
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Ordered represents the set of types that can be used as heap keys.
type Ordered interface {
	constraints.Ordered
}

// maxDegree bounds the number of children an element can accumulate: an
// element of degree d roots a subtree of at least F(d+2) elements and
// the arena is indexed by int32, so degrees never reach 46.
const maxDegree = 47

// Heap implements a Fibonacci heap: a set of heap ordered trees whose
// roots form a circular doubly linked ring, with the smallest root
// cached. Push, Merge and DecreaseKey take O(1) amortized time, Pop and
// Delete O(log n) amortized time. Elements are stored in an arena and
// addressed by the Handle returned from Push.
//
// Keys are compared with the < operator. For floating point keys a NaN
// never compares less than anything and the position of an element with
// a NaN key is therefore unspecified.
//
// A Heap must be created with New and is not safe for concurrent use.
type Heap[K Ordered, V any] struct {
	nodes   []node[K, V]
	free    []int32
	scratch []int32
	min     int32
	size    int
	id      uint32
}

// New creates a new Heap. If initial data is supplied via WithData the
// heap is built as if each pair had been pushed in order, leaving
// consolidation to the first Pop.
func New[K Ordered, V any](opts ...Option[K, V]) *Heap[K, V] {
	var o options[K, V]
	for _, fn := range opts {
		fn(&o)
	}
	n := o.sliceCap
	if len(o.keys) > n {
		n = len(o.keys)
	}
	h := &Heap[K, V]{
		nodes: make([]node[K, V], 0, n),
		min:   none,
		id:    heapIDs.Add(1),
	}
	for i, k := range o.keys {
		h.Push(k, o.vals[i])
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return h.size
}

// IsEmpty reports whether the heap contains no elements.
func (h *Heap[K, V]) IsEmpty() bool {
	return h.size == 0
}

// Push adds the key/value pair to the heap and returns a Handle that
// identifies the element for use with DecreaseKey, Delete, Key and
// Value.
func (h *Heap[K, V]) Push(k K, v V) Handle {
	ni := h.alloc(k, v)
	h.addRoot(ni)
	h.size++
	return Handle{heap: h.id, slot: ni, gen: h.nodes[ni].gen}
}

// Peek returns the smallest key and its value without removing them. It
// returns ErrEmpty if the heap is empty.
func (h *Heap[K, V]) Peek() (K, V, error) {
	if h.min == none {
		var k K
		var v V
		return k, v, ErrEmpty
	}
	return h.nodes[h.min].key, h.nodes[h.min].val, nil
}

// Pop removes and returns the smallest key and its value. It returns
// ErrEmpty if the heap is empty.
func (h *Heap[K, V]) Pop() (K, V, error) {
	if h.min == none {
		var k K
		var v V
		return k, v, ErrEmpty
	}
	k, v := h.popMin()
	return k, v, nil
}

// Key returns the current key of the element identified by hd.
func (h *Heap[K, V]) Key(hd Handle) (K, error) {
	ni, err := h.lookup(hd)
	if err != nil {
		var k K
		return k, err
	}
	return h.nodes[ni].key, nil
}

// Value returns the value of the element identified by hd.
func (h *Heap[K, V]) Value(hd Handle) (V, error) {
	ni, err := h.lookup(hd)
	if err != nil {
		var v V
		return v, err
	}
	return h.nodes[ni].val, nil
}

// Merge moves every element of other into h, leaving other empty. The
// root rings of the two heaps are spliced together with a single key
// comparison; when the two minimums carry equal keys h keeps its own.
// Storage for other's elements is appended to h's arena and their links
// relocated, so Merge costs O(len(other)) time but no key comparisons
// beyond the one above. Handles issued by h remain valid. Handles
// issued by other are invalidated and other is reset for reuse as a
// fresh empty heap. Merging a heap with itself or with an empty heap
// has no effect.
func (h *Heap[K, V]) Merge(other *Heap[K, V]) {
	if other == h || other.min == none {
		return
	}
	base := int32(len(h.nodes))
	h.nodes = append(h.nodes, other.nodes...)
	for i := base; i < int32(len(h.nodes)); i++ {
		if nd := &h.nodes[i]; nd.gen&1 == 1 {
			nd.reloc(base)
		}
	}
	for _, fi := range other.free {
		h.free = append(h.free, fi+base)
	}
	omin := other.min + base
	if h.min == none {
		h.min = omin
	} else {
		h.spliceRings(h.min, omin)
		if h.nodes[omin].key < h.nodes[h.min].key {
			h.min = omin
		}
	}
	h.size += other.size
	other.reset()
}

// reset returns the heap to the empty state under a fresh identity so
// that outstanding handles are rejected rather than resolved against
// recycled slots.
func (h *Heap[K, V]) reset() {
	h.nodes = nil
	h.free = nil
	h.scratch = nil
	h.min = none
	h.size = 0
	h.id = heapIDs.Add(1)
}

// Drain returns an iterator that removes and yields key/value pairs in
// ascending key order until the heap is empty. Stopping early leaves
// the remaining elements in place.
func (h *Heap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for h.min != none {
			k, v := h.popMin()
			if !yield(k, v) {
				return
			}
		}
	}
}

// popMin removes the element at h.min, promotes its children to roots
// and consolidates the root ring. The heap must not be empty.
func (h *Heap[K, V]) popMin() (K, V) {
	mi := h.min
	k, v := h.nodes[mi].key, h.nodes[mi].val
	if ci := h.nodes[mi].child; ci != none {
		i := ci
		for {
			h.nodes[i].parent = none
			h.nodes[i].mark = false
			if i = h.nodes[i].right; i == ci {
				break
			}
		}
		h.spliceRings(mi, ci)
	}
	next := h.nodes[mi].right
	h.unlink(mi)
	h.release(mi)
	h.size--
	if next == mi {
		h.min = none
	} else {
		h.consolidate(next)
	}
	return k, v
}

// consolidate links roots of equal degree until every degree is unique,
// then recomputes the minimum. start must be a member of the root ring.
// Roots are folded in ring order starting at start; when two roots carry
// equal keys the one already in the degree table keeps its place and
// becomes the parent.
func (h *Heap[K, V]) consolidate(start int32) {
	// Linking reshapes the ring mid scan, so snapshot it first.
	roots := h.scratch[:0]
	i := start
	for {
		roots = append(roots, i)
		if i = h.nodes[i].right; i == start {
			break
		}
	}

	var table [maxDegree + 1]int32
	var occupied uint64 // bit d set when table[d] holds a root
	for _, ri := range roots {
		d := h.nodes[ri].degree
		for occupied&(1<<d) != 0 {
			occupied &^= 1 << d
			oi := table[d]
			if h.nodes[ri].key < h.nodes[oi].key {
				h.link(oi, ri)
			} else {
				h.link(ri, oi)
				ri = oi
			}
			d = h.nodes[ri].degree
		}
		table[d] = ri
		occupied |= 1 << d
	}

	h.min = none
	for occupied != 0 {
		d := bits.TrailingZeros64(occupied)
		occupied &^= 1 << d
		if ri := table[d]; h.min == none || h.nodes[ri].key < h.nodes[h.min].key {
			h.min = ri
		}
	}
	h.scratch = roots
}

// linkAfter splices xi into the ring immediately to the right of pi.
func (h *Heap[K, V]) linkAfter(pi, xi int32) {
	ri := h.nodes[pi].right
	h.nodes[pi].right = xi
	h.nodes[xi].left, h.nodes[xi].right = pi, ri
	h.nodes[ri].left = xi
}

// unlink removes xi from its sibling ring. xi's own links are left in
// place and must be rewritten by the caller.
func (h *Heap[K, V]) unlink(xi int32) {
	l, r := h.nodes[xi].left, h.nodes[xi].right
	h.nodes[l].right = r
	h.nodes[r].left = l
}

// spliceRings concatenates the disjoint rings containing ai and bi.
func (h *Heap[K, V]) spliceRings(ai, bi int32) {
	ar := h.nodes[ai].right
	bl := h.nodes[bi].left
	h.nodes[ai].right = bi
	h.nodes[bi].left = ai
	h.nodes[bl].right = ar
	h.nodes[ar].left = bl
}

// addRoot places xi, which must not be a member of any ring, into the
// root ring, moving the cached minimum if xi carries a smaller key.
func (h *Heap[K, V]) addRoot(xi int32) {
	h.nodes[xi].parent = none
	if h.min == none {
		h.nodes[xi].left, h.nodes[xi].right = xi, xi
		h.min = xi
		return
	}
	h.linkAfter(h.min, xi)
	if h.nodes[xi].key < h.nodes[h.min].key {
		h.min = xi
	}
}

// link removes xi from the root ring and makes it the newest child of
// pi, clearing its mark.
func (h *Heap[K, V]) link(xi, pi int32) {
	h.unlink(xi)
	h.nodes[xi].parent = pi
	h.nodes[xi].mark = false
	if ci := h.nodes[pi].child; ci == none {
		h.nodes[pi].child = xi
		h.nodes[xi].left, h.nodes[xi].right = xi, xi
	} else {
		h.linkAfter(ci, xi)
	}
	h.nodes[pi].degree++
}
