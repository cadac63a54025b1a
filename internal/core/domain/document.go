package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// SaveKind is the kind of file action reported by the save notification source.
type SaveKind uint8

const (
	// SaveKindContentSaved indicates the document content was written to disk.
	SaveKindContentSaved SaveKind = iota
	// SaveKindRenamed indicates the document was renamed.
	SaveKindRenamed
	// SaveKindRemoved indicates the document was removed.
	SaveKindRemoved
)

// SaveEvent is a single "file saved" notification.
type SaveEvent struct {
	Path    string
	SavedAt time.Time
	Kind    SaveKind
}

// NewSaveEvent creates a content-saved event for path.
func NewSaveEvent(path string, savedAt time.Time) SaveEvent {
	return SaveEvent{Path: path, SavedAt: savedAt, Kind: SaveKindContentSaved}
}

// SourceDocument is a stylesheet source file classified as root or partial.
type SourceDocument struct {
	Path      string
	IsPartial bool
}

// NewSourceDocument classifies path by its base name.
func NewSourceDocument(path string) SourceDocument {
	return SourceDocument{
		Path:      path,
		IsPartial: strings.HasPrefix(filepath.Base(path), PartialMarker),
	}
}

// IsStylesheetSource reports whether path uses the stylesheet source extension (case-insensitive).
func IsStylesheetSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SourceExt)
}

// IsRootStylesheet reports whether path is a stylesheet source that can be compiled directly.
func IsRootStylesheet(path string) bool {
	return IsStylesheetSource(path) && !NewSourceDocument(path).IsPartial
}

// CompileRequest asks for one root document to be compiled.
// RequestedAt is the save time the request originates from and guards against stale builds.
type CompileRequest struct {
	Document    SourceDocument
	RequestedAt time.Time
}

// CompileResult is the outcome of executing a CompileRequest.
// OutputPath is empty when the backend produced no output location.
// Err may be set together with OutputPath when the output was replaced with an error comment.
// A skipped result carries ErrStaleRequest.
type CompileResult struct {
	OutputPath string
	Err        error
	Skipped    bool
}

// Succeeded reports whether the request ran and completed without error.
func (r CompileResult) Succeeded() bool {
	return !r.Skipped && r.Err == nil
}
