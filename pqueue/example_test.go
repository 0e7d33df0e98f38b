package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/pqueue"
)

// ExampleQueue shows lowest-priority-first extraction with FIFO ties.
func ExampleQueue() {
	q := pqueue.New[string]()
	q.Insert("second", 1)
	q.Insert("first", 0)
	q.Insert("third", 1)
	for !q.IsEmpty() {
		item, prio, _ := q.ExtractMin()
		fmt.Println(prio, item)
	}
	// Output:
	// 0 first
	// 1 second
	// 1 third
}
