// Package flow describes a remote call prepared on the UI goroutine.
//
// Guards and snapshots happen when the Op is built. Run does the blocking call
// and must only touch what the Op captured; it may run on another goroutine.
// Done applies the outcome on the UI goroutine and always runs once Run has
// returned. Next, when set, is asked for a follow-up op after Done.
package flow

import "context"

type Op struct {
	Name string
	Run  func(ctx context.Context) error
	Done func(err error)
	Next func() *Op
}

// Finish applies the outcome of Run and returns the follow-up op, if any.
func (o *Op) Finish(err error) *Op {
	if o.Done != nil {
		o.Done(err)
	}
	if o.Next != nil {
		return o.Next()
	}
	return nil
}

// Execute runs the op and its follow-ups inline; used by headless callers and
// tests. The returned error is the first op's.
func (o *Op) Execute(ctx context.Context) error {
	var first error
	for op, i := o, 0; op != nil; i++ {
		var err error
		if op.Run != nil {
			err = op.Run(ctx)
		}
		if i == 0 {
			first = err
		}
		op = op.Finish(err)
	}
	return first
}
