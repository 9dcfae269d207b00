// Package mesa provides a local writing workspace: a multi-project text
// store with debounced durable persistence, derived text metrics, an
// optional remote mirror, and a panel of advisory tools (dictionary,
// rhymes, literary references, spelling review, continuation, and
// full-text search over a personal reference library).
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, http/).
package mesa
