// Package fs provides file-based import and export of projects.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mesa"
)

// FallbackFilename names exported files when the project has no title.
const FallbackFilename = "escrito"

// ExportFormats are the file extensions a project can be exported to.
var ExportFormats = []string{"txt", "md"}

// ExportPath derives the export file path for a project inside dir. The
// filename is the project title with path separators flattened, or
// FallbackFilename when the title is empty.
func ExportPath(dir string, p *mesa.Project, format string) (string, error) {
	if !validFormat(format) {
		return "", mesa.Errorf(mesa.EINVALID, "unsupported export format %q", format)
	}

	name := strings.TrimSpace(p.Title)
	if name == "" {
		name = FallbackFilename
	}
	name = strings.ReplaceAll(name, string(filepath.Separator), "-")
	name = strings.ReplaceAll(name, "/", "-")

	return filepath.Join(dir, name+"."+format), nil
}

// ExportProject writes the project content to dir as a plain text or
// markdown file and returns the written path.
func ExportProject(dir string, p *mesa.Project, format string) (string, error) {
	path, err := ExportPath(dir, p, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(p.Content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadProject reads a .txt or .md file for import. The title is the
// base filename without its extension; the content is the file verbatim.
func ReadProject(path string) (title, content string, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".md" {
		return "", "", mesa.Errorf(mesa.EINVALID, "only .txt and .md files can be imported")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	base := filepath.Base(path)
	title = base[:len(base)-len(filepath.Ext(base))]
	return title, string(data), nil
}

func validFormat(format string) bool {
	for _, f := range ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
