// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/container/heap"
)

type withValue[K heap.Ordered, V any] struct {
	k K
	v V
}

type withValueSlice[K heap.Ordered, V any] []withValue[K, V]

func (h *withValueSlice[K, V]) Less(i, j int) bool {
	return (*h)[i].k < (*h)[j].k
}

func (h *withValueSlice[K, V]) Swap(i, j int) {
	(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
}

func (h *withValueSlice[K, V]) Len() int {
	return len(*h)
}

func (h *withValueSlice[K, V]) Pop() (v any) {
	old := *h
	n := len(old)
	v = (*h)[n-1]
	*h = old[:n-1]
	return
}

func (h *withValueSlice[K, V]) Push(v any) {
	*h = append(*h, v.(withValue[K, V]))
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

const benchmarkInputSize = 10000

func benchmarkStdHeap[K heap.Ordered, V any](b *testing.B, h *withValueSlice[K, V], keys []K, v V) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			stdheap.Push(h, withValue[K, V]{k: keys[j], v: v})
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(h).(withValue[K, V])
		}
	}
}

func BenchmarkStdHeapDup(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	h := make(withValueSlice[int, int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys, 0)
}

func BenchmarkStdHeapRand(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	h := make(withValueSlice[int, int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys, 0)
}

func BenchmarkStdHeapZipf(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	h := make(withValueSlice[uint64, int], 0, len(keys))
	b.ResetTimer()
	benchmarkStdHeap(b, &h, keys, 0)
}

func benchmarkGenHeap[K heap.Ordered, V any](b *testing.B, h *heap.T[K, V], keys []K, v V) {
	for i := 0; i < b.N; i++ {
		for j := range keys {
			h.Push(keys[j], v)
		}
		for h.Len() > 0 {
			h.Pop()
		}
	}
}

func BenchmarkGenHeapDup(b *testing.B) {
	b.ReportAllocs()
	keys := make([]int, benchmarkInputSize)
	b.ResetTimer()
	h := heap.NewMin[int, int]()
	benchmarkGenHeap(b, h, keys, 0)
}

func BenchmarkGenHeapRand(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(0, benchmarkInputSize)
	b.ResetTimer()
	h := heap.NewMin[int, int]()
	benchmarkGenHeap(b, h, keys, 0)
}

func BenchmarkGenHeapZipf(b *testing.B) {
	b.ReportAllocs()
	keys := zipfRand(0, benchmarkInputSize)
	b.ResetTimer()
	h := heap.NewMin[uint64, int]()
	benchmarkGenHeap(b, h, keys, 0)
}
