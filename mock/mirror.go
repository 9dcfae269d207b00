package mock

import (
	"context"

	"github.com/fwojciec/mesa"
)

var _ mesa.RemoteMirror = (*RemoteMirror)(nil)

// RemoteMirror is a mock implementation of mesa.RemoteMirror.
type RemoteMirror struct {
	PushFn func(ctx context.Context, title, content string) (*mesa.SaveRecord, error)
}

func (m *RemoteMirror) Push(ctx context.Context, title, content string) (*mesa.SaveRecord, error) {
	return m.PushFn(ctx, title, content)
}
