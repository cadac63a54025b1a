package orchestrator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorComment renders err as a CSS comment block: the error message on the first line,
// followed by one line per cause in the chain.
func ErrorComment(err error) string {
	lines := diagnosticTrace(err)
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, "*/", "* /")
	}
	return "/*\n" + strings.Join(lines, "\n") + "\n*/"
}

// diagnosticTrace flattens the error chain into lines. Metadata attached to a link is
// listed right after its message.
func diagnosticTrace(err error) []string {
	var lines []string

	for current := err; current != nil; current = errors.Unwrap(current) {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				lines = append(lines, diagnosticTrace(e)...)
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			lines = append(lines, strings.Split(current.Error(), "\n")...)
			break
		}
		if m.Message() != "" {
			lines = append(lines, strings.Split(m.Message(), "\n")...)
		}

		if md, ok := current.(metadataer); ok {
			meta := md.Metadata()
			keys := make([]string, 0, len(meta))
			for k := range meta {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				lines = append(lines, fmt.Sprintf("%s: %v", k, meta[k]))
			}
		}
	}

	return lines
}
