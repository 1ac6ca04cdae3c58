// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fibheap

import "errors"

// Errors returned by heap operations, all of which leave the heap
// unchanged. Use errors.Is to test for them.
var (
	// ErrEmpty is returned by Peek and Pop on an empty heap.
	ErrEmpty = errors.New("heap is empty")
	// ErrInvalidHandle is returned when a handle does not refer to a
	// live element of the heap it is presented to.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrInvalidDecrease is returned by DecreaseKey when the new key is
	// greater than the element's current key.
	ErrInvalidDecrease = errors.New("new key is greater than existing key")
)
