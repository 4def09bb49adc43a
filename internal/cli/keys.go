package cli

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// textureKey derives the frame key of an input file: its path relative to root, slash
// separated, without extension and in Unicode normal form C. Files that decompose differently
// on disk (macOS stores NFD names) still get the same key.
func textureKey(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return norm.NFC.String(rel)
}

// vim: ts=4
