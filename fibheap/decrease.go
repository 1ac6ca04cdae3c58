// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fibheap

// DecreaseKey lowers the key of the element identified by hd to k,
// which may equal the current key. It returns ErrInvalidHandle if hd
// does not refer to a live element of this heap and ErrInvalidDecrease
// if k is greater than the current key; in both cases the heap is
// unchanged.
func (h *Heap[K, V]) DecreaseKey(hd Handle, k K) error {
	ni, err := h.lookup(hd)
	if err != nil {
		return err
	}
	if k > h.nodes[ni].key {
		return ErrInvalidDecrease
	}
	h.nodes[ni].key = k
	if pi := h.nodes[ni].parent; pi != none && k < h.nodes[pi].key {
		h.cut(ni, pi)
		h.cascade(pi)
	}
	// The cached minimum must stay a root. An element left below a NaN
	// keyed parent never cuts, whatever its new key, and must not be
	// cached here.
	if h.nodes[ni].parent == none && k < h.nodes[h.min].key {
		h.min = ni
	}
	return nil
}

// Delete removes the element identified by hd, returning its key and
// value, or ErrInvalidHandle if hd does not refer to a live element of
// this heap.
func (h *Heap[K, V]) Delete(hd Handle) (K, V, error) {
	ni, err := h.lookup(hd)
	if err != nil {
		var k K
		var v V
		return k, v, err
	}
	if pi := h.nodes[ni].parent; pi != none {
		h.cut(ni, pi)
		h.cascade(pi)
	}
	// Remove via the extract minimum path regardless of key.
	h.min = ni
	k, v := h.popMin()
	return k, v, nil
}

// cut detaches ni from its parent pi and returns it to the root ring
// with its mark cleared. The cached minimum is left for the caller to
// update.
func (h *Heap[K, V]) cut(ni, pi int32) {
	h.nodes[pi].degree--
	if h.nodes[pi].degree == 0 {
		h.nodes[pi].child = none
	} else if h.nodes[pi].child == ni {
		h.nodes[pi].child = h.nodes[ni].right
	}
	h.unlink(ni)
	h.nodes[ni].parent = none
	h.nodes[ni].mark = false
	h.linkAfter(h.min, ni)
}

// cascade walks rootwards from pi, cutting each marked ancestor and
// marking the first unmarked one. Roots are never marked.
func (h *Heap[K, V]) cascade(pi int32) {
	for {
		gi := h.nodes[pi].parent
		if gi == none {
			return
		}
		if !h.nodes[pi].mark {
			h.nodes[pi].mark = true
			return
		}
		h.cut(pi, gi)
		pi = gi
	}
}
