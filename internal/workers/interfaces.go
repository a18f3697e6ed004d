// Package workers provides abstractions for managing and running
// background workers in the dashboard.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations must not block: long-running work is started in its own
// goroutine and stops when ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}
