package domain

import "path/filepath"

const (
	// SourceExt is the extension of stylesheet source documents.
	SourceExt = ".scss"

	// CSSExt is the extension of generated stylesheets.
	CSSExt = ".css"

	// MinCSSExt is the extension of minified generated stylesheets.
	MinCSSExt = ".min.css"

	// PartialMarker prefixes the base name of partial (include-only) documents.
	PartialMarker = "_"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "sassy.yaml"

	// SassyDirName is the name of the internal workspace directory.
	SassyDirName = ".sassy"

	// RegistryDirName is the name of the nesting registry directory.
	RegistryDirName = "nesting"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRegistryPath returns the nesting registry directory below the workspace root.
func DefaultRegistryPath(root string) string {
	return filepath.Join(root, SassyDirName, RegistryDirName)
}

// MinifiedPath returns the sibling <basename>.min.css path for a generated stylesheet.
func MinifiedPath(output string) string {
	base := filepath.Base(output)
	name := base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(filepath.Dir(output), name+MinCSSExt)
}
