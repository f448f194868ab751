package rpc

import (
	"context"
	"fmt"
	"net/rpc"
)

// Client is implemented by both transports so callers do not care how a server is reached
type Client interface {
	Connect() error
	CallContext(ctx context.Context, method string, request interface{}, reply interface{}) error
	Disconnect() error
}

// callContext waits for an asynchronous call or for ctx, whichever comes first. An abandoned call still completes
// in the background and its reply is discarded.
func callContext(ctx context.Context, client *rpc.Client, method string, request interface{}, reply interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	call := client.Go(method, request, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return fmt.Errorf("calling %s: %w", method, ctx.Err())
	case done := <-call.Done:
		return done.Error
	}
}
