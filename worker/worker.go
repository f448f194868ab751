// Package worker computes columns of a render pass, either in process or on behalf of a remote coordinator.
package worker

import (
	"context"
	"fmt"

	"StripedMandelbrot/rpc"
	"StripedMandelbrot/task"
)

// Renderer computes one column. Implementations must not keep references to the task after returning.
type Renderer interface {
	RenderColumn(ctx context.Context, t task.Task) (task.Result, error)
}

// Local computes columns in the calling goroutine
type Local struct{}

func (Local) RenderColumn(ctx context.Context, t task.Task) (result task.Result, err error) {
	if err := ctx.Err(); err != nil {
		return task.Result{}, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("column %d panicked: %v", t.Column, r)
		}
	}()
	return Compute(t), nil
}

var _ Renderer = Local{}

// Remote forwards columns to a Worker running in another process
type Remote struct {
	client rpc.Client
}

func NewRemote(client rpc.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) RenderColumn(ctx context.Context, t task.Task) (task.Result, error) {
	var result task.Result
	if err := r.client.CallContext(ctx, "Worker.RenderColumn", t, &result); err != nil {
		return task.Result{}, fmt.Errorf("remote column %d: %w", t.Column, err)
	}
	return result, nil
}

var _ Renderer = (*Remote)(nil)
