// Package workers runs the background jobs of the sandbox API.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] runs a
// set of them side by side and waits for all to return.
package workers

import "context"

// Worker is a background job bound to the lifetime of ctx.
type Worker interface {
	Run(ctx context.Context)
}
