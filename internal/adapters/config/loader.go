// Package config provides the configuration loader for sassy.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the sassy.yaml governing cwd.
// Without a configuration file the defaults apply and cwd is the workspace root.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using default options")
		return &domain.Workspace{Root: filepath.Clean(cwd), Options: domain.DefaultOptions()}, nil
	}

	configPath := filepath.Join(root, domain.ConfigFileName)

	var sassyfile Sassyfile
	if err := readAndUnmarshalYAML(configPath, &sassyfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	workspaceRoot := resolvePath(root, sassyfile.Root)
	opts := applyOptions(domain.DefaultOptions(), sassyfile.Options)
	if opts.RubyInstallPath != "" {
		opts.RubyInstallPath = resolvePath(workspaceRoot, opts.RubyInstallPath)
	}

	return &domain.Workspace{
		Root:    workspaceRoot,
		Options: opts,
		Ignore:  sassyfile.Ignore,
	}, nil
}

// DiscoverRoot walks up from cwd to the nearest directory containing sassy.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)

	for {
		if _, err := os.Stat(filepath.Join(currentDir, domain.ConfigFileName)); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func applyOptions(opts domain.Options, dto *OptionsDTO) domain.Options {
	if dto == nil {
		return opts
	}

	setBool(&opts.GenerateOnSave, dto.GenerateOnSave)
	setBool(&opts.MinifyOnSave, dto.MinifyOnSave)
	setBool(&opts.IncludeInProject, dto.IncludeInProject)
	setBool(&opts.IncludeInProjectOutput, dto.IncludeInProjectOutput)
	setBool(&opts.ReplaceOutputWithError, dto.ReplaceOutputWithError)
	setBool(&opts.IncludeSourceComments, dto.IncludeSourceComments)
	setBool(&opts.DebugLogging, dto.DebugLogging)

	if dto.OutputDirectory != nil {
		opts.OutputDirectory = *dto.OutputDirectory
	}
	if dto.RubyInstallPath != nil {
		opts.RubyInstallPath = *dto.RubyInstallPath
	}

	return opts
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// resolvePath resolves p against base unless it is empty or absolute.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
