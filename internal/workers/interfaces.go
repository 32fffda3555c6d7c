// Package workers runs the background jobs of the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every worker together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately; the job runs until ctx is
// cancelled or Stop is called. Stop blocks until the job has exited and is a
// no-op when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
