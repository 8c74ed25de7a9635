// SPDX-License-Identifier: MIT

// Package pq_test provides runnable examples for IndexedMinHeap.
package pq_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netrouting/pq"
)

// ExampleIndexedMinHeap shows insert, decrease-key and extraction order.
func ExampleIndexedMinHeap() {
	h := pq.New(4)
	_ = h.Insert(0, 3.0)
	_ = h.Insert(1, 1.5)
	_ = h.Insert(2, 7.0)
	_ = h.Insert(3, 2.0)

	// Node 2 found a cheaper route.
	_ = h.DecreaseKey(2, 1.0)

	for !h.IsEmpty() {
		id, _ := h.ExtractMin()
		fmt.Print(id, " ")
	}
	fmt.Println()
	// Output: 2 1 3 0
}

// ExampleIndexedMinHeap_Insert shows that extracted ids cannot come back.
func ExampleIndexedMinHeap_Insert() {
	h := pq.New(2)
	_ = h.Insert(1, 4.2)
	_, _ = h.ExtractMin()

	err := h.Insert(1, 0.5)
	fmt.Println(errors.Is(err, pq.ErrSettled))
	// Output: true
}

// ExampleIndexedMinHeap_String prints the heap one level per line.
func ExampleIndexedMinHeap_String() {
	h := pq.New(3)
	_ = h.Insert(0, 2)
	_ = h.Insert(1, 1)
	_ = h.Insert(2, 3)
	fmt.Print(h)
	// Output:
	// 1.00(1)
	// 2.00(0) 3.00(2)
}
