// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fibheap

import (
	"fmt"

	"cloudeng.io/errors"
)

// invariants walks the entire structure and returns every violated
// structural property rather than stopping at the first. The tests run
// it after the mutations they make.
func (h *Heap[K, V]) invariants() error {
	errs := errors.M{}
	live := 0
	for i := range h.nodes {
		if h.nodes[i].gen&1 == 1 {
			live++
		}
	}
	if live != h.size {
		errs.Append(fmt.Errorf("size is %v but %v slots are live", h.size, live))
	}
	if got, want := len(h.free), len(h.nodes)-live; got != want {
		errs.Append(fmt.Errorf("free list holds %v slots, want %v", got, want))
	}
	for _, fi := range h.free {
		if fi < 0 || int(fi) >= len(h.nodes) {
			errs.Append(fmt.Errorf("free slot %v out of range", fi))
			continue
		}
		if h.nodes[fi].gen&1 == 1 {
			errs.Append(fmt.Errorf("free slot %v holds a live element", fi))
		}
	}
	if h.min == none {
		if h.size != 0 {
			errs.Append(fmt.Errorf("heap of %v elements has no minimum", h.size))
		}
		return errs.Err()
	}
	if h.size == 0 {
		errs.Append(fmt.Errorf("empty heap has minimum slot %v", h.min))
		return errs.Err()
	}
	if h.nodes[h.min].parent != none {
		errs.Append(fmt.Errorf("minimum slot %v is not a root", h.min))
	}
	reached := 0
	quota := h.size
	ri := h.min
	for steps := 0; ; steps++ {
		if steps > h.size {
			errs.Append(fmt.Errorf("root ring does not close"))
			return errs.Err()
		}
		h.checkRing(ri, &errs)
		r := &h.nodes[ri]
		if r.parent != none {
			errs.Append(fmt.Errorf("root ring member %v has parent %v", ri, r.parent))
		}
		if r.mark {
			errs.Append(fmt.Errorf("root %v is marked", ri))
		}
		if r.key < h.nodes[h.min].key {
			errs.Append(fmt.Errorf("root %v key %v is smaller than the minimum key %v", ri, r.key, h.nodes[h.min].key))
		}
		reached += h.checkTree(ri, &quota, &errs)
		if ri = r.right; ri == h.min {
			break
		}
	}
	if reached != h.size {
		errs.Append(fmt.Errorf("%v elements reachable from the root ring, want %v", reached, h.size))
	}
	return errs.Err()
}

// checkRing verifies that ni's immediate neighbours link back to it.
func (h *Heap[K, V]) checkRing(ni int32, errs *errors.M) {
	n := &h.nodes[ni]
	if got, want := h.nodes[n.left].right, ni; got != want {
		errs.Append(fmt.Errorf("slot %v: left neighbour %v links right to %v", ni, n.left, got))
	}
	if got, want := h.nodes[n.right].left, ni; got != want {
		errs.Append(fmt.Errorf("slot %v: right neighbour %v links left to %v", ni, n.right, got))
	}
}

// checkTree verifies the subtree rooted at ri and returns the number of
// elements it contains. The quota bounds the total number of slots
// visited so that a cyclic structure cannot recurse forever; exhausting
// it necessarily trips the reachability check in the caller.
func (h *Heap[K, V]) checkTree(ri int32, quota *int, errs *errors.M) int {
	if *quota <= 0 {
		return 0
	}
	*quota--
	r := &h.nodes[ri]
	if r.gen&1 == 0 {
		errs.Append(fmt.Errorf("slot %v is reachable but free", ri))
		return 0
	}
	n := 1
	children := int32(0)
	if r.child != none {
		ci := r.child
		for steps := 0; ; steps++ {
			if steps > h.size {
				errs.Append(fmt.Errorf("child ring of %v does not close", ri))
				break
			}
			h.checkRing(ci, errs)
			c := &h.nodes[ci]
			if c.parent != ri {
				errs.Append(fmt.Errorf("child %v of %v has parent %v", ci, ri, c.parent))
			}
			if c.key < r.key {
				errs.Append(fmt.Errorf("child %v key %v is smaller than parent %v key %v", ci, c.key, ri, r.key))
			}
			children++
			n += h.checkTree(ci, quota, errs)
			if ci = c.right; ci == r.child {
				break
			}
		}
	}
	if children != r.degree {
		errs.Append(fmt.Errorf("slot %v has degree %v but %v children", ri, r.degree, children))
	}
	if min := fib(r.degree + 2); n < min {
		errs.Append(fmt.Errorf("slot %v of degree %v spans %v elements, want at least %v", ri, r.degree, n, min))
	}
	return n
}

// fib returns the n'th Fibonacci number.
func fib(n int32) int {
	a, b := 0, 1
	for ; n > 0; n-- {
		a, b = b, a+b
	}
	return a
}
