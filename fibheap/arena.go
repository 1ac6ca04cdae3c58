// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fibheap

import "sync/atomic"

// none marks the absence of a parent or child link. Ring links are never
// none for a live element; an element with no siblings links to itself.
const none = -1

// node is a single element in the arena. Tree and ring structure is
// expressed as arena indices rather than pointers so that elements can be
// referred to by stable handles and relocated in bulk on Merge.
type node[K Ordered, V any] struct {
	key K
	val V

	parent int32
	child  int32
	left   int32
	right  int32

	// Number of children in the ring at child.
	degree int32

	// Set when a child has been cut since this node last became a child
	// of another node. Roots are never marked.
	mark bool

	// Slot generation, odd while the slot holds a live element. It is
	// incremented on every allocation and every release so that handles
	// to removed elements never match.
	gen uint32
}

// reloc rebases the node's links after its slot has moved by base
// positions, as happens when one arena is appended to another.
func (n *node[K, V]) reloc(base int32) {
	if n.parent != none {
		n.parent += base
	}
	if n.child != none {
		n.child += base
	}
	n.left += base
	n.right += base
}

// Handle identifies an element for use with DecreaseKey, Delete, Key and
// Value. A Handle is valid from the Push that returned it until the
// element is removed from the heap; using it after that, or against a
// different heap, returns ErrInvalidHandle. The zero Handle is never
// valid.
type Handle struct {
	heap uint32
	slot int32
	gen  uint32
}

// heapIDs distinguishes heap instances so that a Handle presented to the
// wrong heap is rejected rather than resolved against an arbitrary slot.
var heapIDs atomic.Uint32

// alloc returns the index of a slot holding k and v as a singleton ring
// with no parent and no children, reusing a released slot if one exists.
func (h *Heap[K, V]) alloc(k K, v V) int32 {
	ni := int32(len(h.nodes))
	gen := uint32(1)
	if n := len(h.free); n > 0 {
		ni = h.free[n-1]
		h.free = h.free[:n-1]
		gen = h.nodes[ni].gen + 1
	} else {
		h.nodes = append(h.nodes, node[K, V]{})
	}
	h.nodes[ni] = node[K, V]{
		key:    k,
		val:    v,
		parent: none,
		child:  none,
		left:   ni,
		right:  ni,
		gen:    gen,
	}
	return ni
}

// release returns the slot at ni to the free list, invalidating any
// handles that refer to it.
func (h *Heap[K, V]) release(ni int32) {
	nd := &h.nodes[ni]
	*nd = node[K, V]{parent: none, child: none, left: none, right: none, gen: nd.gen + 1}
	h.free = append(h.free, ni)
}

// lookup resolves hd to an arena index, or reports that hd does not
// refer to a live element of this heap.
func (h *Heap[K, V]) lookup(hd Handle) (int32, error) {
	if hd.heap != h.id || hd.slot < 0 || int(hd.slot) >= len(h.nodes) {
		return none, ErrInvalidHandle
	}
	if h.nodes[hd.slot].gen != hd.gen {
		return none, ErrInvalidHandle
	}
	return hd.slot, nil
}
