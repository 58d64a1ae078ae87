// Package queue implements the ordered work queue that relocations are
// processed from. Items are processed strictly in the order they were
// enqueued, one at a time, and processing stops at the first failure.
package queue

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Queue is a generic FIFO queue that can hold any comparable type of items
// and tracks the outcome of every processed item.
type Queue[T comparable] struct {
	sync.RWMutex
	hasStarted  bool
	hasFinished bool
	startTime   time.Time
	finishTime  time.Time
	head        int
	items       []T
	success     []T
	failed      []T
	inProgress  map[T]struct{}
}

// Progress is a point-in-time snapshot of a [Queue]. It is meant to be passed
// by value.
type Progress struct {
	HasStarted      bool
	HasFinished     bool
	StartTime       time.Time
	FinishTime      time.Time
	TotalItems      int
	ProcessedItems  int
	InProgressItems int
	SuccessItems    int
	FailedItems     int
	RemainingItems  int
}

// NewQueue returns a pointer to a new [Queue].
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{
		inProgress: make(map[T]struct{}),
	}
}

// GetSuccessful returns a copy of the internal slice holding all successful
// items.
func (q *Queue[T]) GetSuccessful() []T {
	q.RLock()
	defer q.RUnlock()

	result := make([]T, len(q.success))
	copy(result, q.success)

	return result
}

// GetFailed returns a copy of the internal slice holding all failed items.
func (q *Queue[T]) GetFailed() []T {
	q.RLock()
	defer q.RUnlock()

	result := make([]T, len(q.failed))
	copy(result, q.failed)

	return result
}

// GetRemaining returns a copy of all items that were not yet dequeued.
func (q *Queue[T]) GetRemaining() []T {
	q.RLock()
	defer q.RUnlock()

	result := make([]T, len(q.items)-q.head)
	copy(result, q.items[q.head:])

	return result
}

// Enqueue adds items to the end of the queue.
func (q *Queue[T]) Enqueue(items ...T) {
	q.Lock()
	defer q.Unlock()

	if q.hasFinished {
		q.finishTime = time.Time{}
		q.hasFinished = false
	}

	q.items = append(q.items, items...)
}

// Dequeue returns an item from the queue and advances the queue head.
func (q *Queue[T]) Dequeue() (T, bool) { //nolint:ireturn
	q.Lock()
	defer q.Unlock()

	if q.head >= len(q.items) {
		var zeroVal T

		return zeroVal, false
	}

	if !q.hasStarted {
		q.startTime = time.Now()
		q.hasStarted = true
	}

	item := q.items[q.head]
	q.head++

	return item, true
}

// SetProcessing sets given items as in progress (processing).
func (q *Queue[T]) SetProcessing(items ...T) {
	q.Lock()
	defer q.Unlock()

	for _, item := range items {
		q.inProgress[item] = struct{}{}
	}
}

// SetSuccess sets given in-progress queue items as successfully processed.
// The items are removed from the in-progress map in the process.
func (q *Queue[T]) SetSuccess(items ...T) {
	q.Lock()
	defer q.Unlock()

	for _, item := range items {
		delete(q.inProgress, item)
		q.success = append(q.success, item)
	}
}

// SetFailed sets given in-progress queue items as failed. The items are
// removed from the in-progress map in the process.
func (q *Queue[T]) SetFailed(items ...T) {
	q.Lock()
	defer q.Unlock()

	for _, item := range items {
		delete(q.inProgress, item)
		q.failed = append(q.failed, item)
	}
}

// Progress returns the [Progress] for the [Queue].
func (q *Queue[T]) Progress() Progress {
	q.RLock()
	defer q.RUnlock()

	return Progress{
		HasStarted:      q.hasStarted,
		HasFinished:     q.hasFinished,
		StartTime:       q.startTime,
		FinishTime:      q.finishTime,
		TotalItems:      len(q.items),
		ProcessedItems:  len(q.success) + len(q.failed),
		InProgressItems: len(q.inProgress),
		SuccessItems:    len(q.success),
		FailedItems:     len(q.failed),
		RemainingItems:  len(q.items) - q.head,
	}
}

// DequeueAndProcess sequentially dequeues and processes items using the given
// processFunc. Every item is processed to completion before the next one is
// dequeued. The first error returned by processFunc marks that item as failed
// and stops the processing, leaving all later items in the queue. A context
// cancellation is only observed in between items.
func (q *Queue[T]) DequeueAndProcess(ctx context.Context, processFunc func(T) error) error {
	defer q.finish()

	for {
		if ctx.Err() != nil {
			return fmt.Errorf("(queue-proc) %w", ctx.Err())
		}

		item, ok := q.Dequeue()
		if !ok {
			return nil
		}

		q.SetProcessing(item)

		if err := processFunc(item); err != nil {
			q.SetFailed(item)

			return err
		}

		q.SetSuccess(item)
	}
}

func (q *Queue[T]) finish() {
	q.Lock()
	defer q.Unlock()

	if !q.hasFinished {
		q.finishTime = time.Now()
		q.hasFinished = true
	}
}
