// Package backend holds helpers shared by the compiler backends.
package backend

import (
	"path/filepath"
	"strings"

	"go.trai.ch/sassy/internal/core/domain"
)

// OutputFor returns the generated stylesheet path for source.
// Without an output directory the stylesheet sits next to its source. A relative output
// directory resolves against the source directory.
func OutputFor(source, outputDirectory string) string {
	dir := filepath.Dir(source)
	if outputDirectory != "" {
		if filepath.IsAbs(outputDirectory) {
			dir = outputDirectory
		} else {
			dir = filepath.Join(dir, outputDirectory)
		}
	}
	return filepath.Join(dir, CSSName(source))
}

// CSSName returns the base name of source with its extension replaced by .css.
func CSSName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + domain.CSSExt
}
