package mesa

import (
	"context"
	"regexp"
	"strings"
)

// MaxMatchesPerSource caps the number of matches returned per reference
// document.
const MaxMatchesPerSource = 10

// LibraryMatch is a paragraph from a reference document that matched a
// search query.
type LibraryMatch struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// LibrarySearcher searches the static reference documents. A document
// that cannot be fetched simply contributes no matches.
type LibrarySearcher interface {
	Search(ctx context.Context, query string) ([]LibraryMatch, error)
}

var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// FindMatches scans text for paragraphs containing query. Paragraphs are
// delimited by blank lines, matching is a case-insensitive substring
// test, and at most MaxMatchesPerSource matches are returned in document
// order. No ranking is applied.
func FindMatches(text, query, source string) []LibraryMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []LibraryMatch
	for _, p := range paragraphSep.Split(text, -1) {
		if !strings.Contains(strings.ToLower(p), query) {
			continue
		}
		matches = append(matches, LibraryMatch{
			Source:  source,
			Content: strings.TrimSpace(p),
		})
		if len(matches) >= MaxMatchesPerSource {
			break
		}
	}

	return matches
}
