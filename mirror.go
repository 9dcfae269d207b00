package mesa

import "context"

// SaveRecord is the acknowledgment returned by the remote save endpoint.
// The record is server-assigned and treated as opaque beyond these
// fields.
type SaveRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// RemoteMirror pushes a snapshot of the active project to a remote
// append-only store. Pushes are explicit, at most once per invocation,
// carry no retry, and never affect local state.
type RemoteMirror interface {
	// Push sends title and content to the remote store. Content is
	// required; an empty title is replaced by a placeholder.
	Push(ctx context.Context, title, content string) (*SaveRecord, error)
}
