// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's processing loop; implementations are expected
// to spawn their goroutines internally and return immediately. The loop must
// exit when ctx is cancelled or Stop is called. Stop blocks until the worker
// has fully terminated and is safe to call when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
