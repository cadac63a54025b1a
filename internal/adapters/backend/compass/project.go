// Package compass compiles stylesheets through the compass project convention.
package compass

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/zerr"
)

// ConfigFile marks the root of a compass project.
const ConfigFile = "config.rb"

const (
	defaultCSSDir  = "stylesheets"
	defaultSassDir = "sass"
)

var dirSetting = regexp.MustCompile(`^\s*(css_dir|sass_dir)\s*=\s*["']([^"']+)["']`)

// Project is the directory layout declared by a compass config.rb.
type Project struct {
	Root    string
	CSSDir  string
	SassDir string
}

// FindProjectRoot returns the nearest ancestor of dir (dir included) containing config.rb.
func FindProjectRoot(dir string) (string, bool) {
	current := filepath.Clean(dir)
	for {
		if info, err := os.Stat(filepath.Join(current, ConfigFile)); err == nil && !info.IsDir() {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// LoadProject reads the css_dir and sass_dir settings of the project at root.
// Missing settings fall back to the compass defaults.
func LoadProject(root string) (Project, error) {
	path := filepath.Join(root, ConfigFile)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		return Project{}, zerr.With(zerr.Wrap(err, domain.ErrCompassConfigMissing.Error()), "path", path)
	}

	p := Project{Root: root, CSSDir: defaultCSSDir, SassDir: defaultSassDir}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		m := dirSetting.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		switch m[1] {
		case "css_dir":
			p.CSSDir = filepath.FromSlash(m[2])
		case "sass_dir":
			p.SassDir = filepath.FromSlash(m[2])
		}
	}

	return p, nil
}

// OutputPath maps source onto the css directory, keeping its position below the sass directory.
// Sources outside the sass directory land directly in the css directory.
func (p Project) OutputPath(source, cssName string) string {
	cssRoot := filepath.Join(p.Root, p.CSSDir)

	rel, err := filepath.Rel(filepath.Join(p.Root, p.SassDir), filepath.Dir(source))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Join(cssRoot, cssName)
	}
	return filepath.Join(cssRoot, rel, cssName)
}
