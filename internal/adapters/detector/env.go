// Package detector picks the log output format for the current environment.
package detector

import (
	"os"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat is the rendering format of log output.
type LogFormat int

const (
	// FormatAuto detects the format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders coloured, human-readable lines.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// DetectEnvironment returns the recommended format for output written to f.
// Terminals get pretty output unless CI is set.
func DetectEnvironment(f *os.File) LogFormat {
	isTTY := f != nil && term.IsTerminal(int(f.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ParseFormat parses a --log-format flag value: "auto", "pretty", "json" or empty.
func ParseFormat(flag string) (LogFormat, error) {
	switch flag {
	case "auto", "":
		return FormatAuto, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, zerr.With(domain.ErrInvalidLogFormat, "value", flag)
	}
}

// ResolveFormat applies the user's choice to the detected format.
func ResolveFormat(detected, user LogFormat) LogFormat {
	if user == FormatAuto {
		return detected
	}
	return user
}
