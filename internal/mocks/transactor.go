package mocks

import (
	"context"

	"github.com/phrazzld/todolist-api/internal/store"
)

// NoopTransactor runs the body directly with a nil transaction and returns
// its error. Err, when set, is returned instead without running the body.
type NoopTransactor struct {
	Err   error
	Calls int
}

var _ store.Transactor = (*NoopTransactor)(nil)

// RunInTx implements store.Transactor.
func (n *NoopTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	n.Calls++
	if n.Err != nil {
		return n.Err
	}
	return fn(ctx, nil)
}
