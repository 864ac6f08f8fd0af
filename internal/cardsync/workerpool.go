package cardsync

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many sessions are checked against the processor at
// the same time.
type WorkerPool struct {
	queue     chan Task
	workers   sync.WaitGroup
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{queue: make(chan Task, size)}

	wp.workers.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.workers.Done()
	for task := range wp.queue {
		if err := run(task); err != nil {
			zap.L().Error("Card sync task failed", zap.Error(err))
		}
	}
}

// run keeps a panicking task from taking its worker down.
func run(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task()
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.queue <- task:
		return nil
	}
}

// Close waits for the queued tasks to finish. No task may be added
// afterwards.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.queue)
	})
	wp.workers.Wait()
}
