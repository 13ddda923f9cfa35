package hooks

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileFilter decides whether a policy applies to the content's file.
// Content without a file path is always eligible.
type FileFilter interface {
	Eligible(content *Content) bool
}

type extensionFilter struct {
	extensions map[string]struct{}
}

// NewExtensionFilter accepts files whose extension is one of extensions.
// Extensions include the leading dot and are matched case-sensitively.
func NewExtensionFilter(extensions ...string) FileFilter {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[ext] = struct{}{}
	}
	return &extensionFilter{extensions: set}
}

func (f *extensionFilter) Eligible(content *Content) bool {
	if !content.HasPath {
		return true
	}

	_, ok := f.extensions[filepath.Ext(content.FilePath)]
	return ok
}

type globFilter struct {
	patterns []string
}

// NewGlobFilter accepts files matching any of the doublestar patterns.
// Patterns are matched against the slash-separated path without its leading
// slash, so "**/tests/**" matches both "tests/a.ts" and "/repo/tests/a.ts".
// It panics if a pattern is malformed, since patterns are fixed at build time.
func NewGlobFilter(patterns ...string) FileFilter {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			panic("hooks: invalid glob pattern " + p)
		}
	}
	return &globFilter{patterns: patterns}
}

func (f *globFilter) Eligible(content *Content) bool {
	if !content.HasPath {
		return true
	}

	name := normalizePath(content.FilePath)
	for _, pattern := range f.patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// normalizePath accepts both slash and backslash separators.
func normalizePath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, `\`, "/"))
	return strings.TrimLeft(p, "/")
}
