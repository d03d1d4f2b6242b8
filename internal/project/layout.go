// Package project maps the generated artifacts onto the canonical Maven
// project layout.
package project

import (
	"fmt"
	"strings"
)

// File is one entry in a project layout. Paths are relative and use forward
// slashes on every platform.
type File struct {
	Path    string
	Content []byte
}

// Layout is an ordered mapping from relative file path to content. It never
// holds duplicate paths or paths with empty segments.
type Layout struct {
	files []File
	index map[string]struct{}
}

// AssemblyError reports a path that cannot be written into a layout.
type AssemblyError struct {
	Path   string
	Reason string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assembly error at %q: %s", e.Path, e.Reason)
}

func newLayout() *Layout {
	return &Layout{index: map[string]struct{}{}}
}

func (l *Layout) add(path string, content []byte) error {
	if path == "" || strings.HasPrefix(path, "/") {
		return &AssemblyError{Path: path, Reason: "path must be relative and non-empty"}
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return &AssemblyError{Path: path, Reason: "path has an empty segment"}
		}
	}
	if _, ok := l.index[path]; ok {
		return &AssemblyError{Path: path, Reason: "duplicate path"}
	}
	l.index[path] = struct{}{}
	l.files = append(l.files, File{Path: path, Content: content})
	return nil
}

// Files returns the layout entries in insertion order.
func (l *Layout) Files() []File {
	out := make([]File, len(l.files))
	copy(out, l.files)
	return out
}

// Get returns the content stored at path.
func (l *Layout) Get(path string) ([]byte, bool) {
	if _, ok := l.index[path]; !ok {
		return nil, false
	}
	for _, f := range l.files {
		if f.Path == path {
			return f.Content, true
		}
	}
	return nil, false
}

// Len returns the number of files.
func (l *Layout) Len() int { return len(l.files) }
