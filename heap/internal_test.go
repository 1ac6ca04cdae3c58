// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "testing"

func (h *T[K, V]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *T[K, V]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.Keys)
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if h.less(l, p) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, h.Keys[p], l, h.Keys[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.less(r, p) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, h.Keys[p], r, h.Keys[r])
			return
		}
		h.verify(t, r)
	}
}
