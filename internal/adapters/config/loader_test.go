package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/config"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm))
}

func TestLoader_Load_Options(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
ignore: ["vendor"]
options:
  minifyOnSave: true
  includeInProject: true
  includeInProjectOutput: true
  replaceOutputWithError: true
  rubyInstallPath: tools/ruby
  includeSourceComments: true
  debugLogging: true
`)

	ws, err := newLoader(t).Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(rootDir), ws.Root)
	assert.Equal(t, []string{"vendor"}, ws.Ignore)
	assert.Equal(t, domain.Options{
		GenerateOnSave:         true,
		MinifyOnSave:           true,
		IncludeInProject:       true,
		IncludeInProjectOutput: true,
		ReplaceOutputWithError: true,
		RubyInstallPath:        filepath.Join(rootDir, "tools", "ruby"),
		IncludeSourceComments:  true,
		DebugLogging:           true,
	}, ws.Options)
}

func TestLoader_Load_ExplicitFalseOverridesDefault(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
options:
  generateOnSave: false
  outputDirectory: ../css
`)

	ws, err := newLoader(t).Load(rootDir)
	require.NoError(t, err)

	assert.False(t, ws.Options.GenerateOnSave)
	assert.Equal(t, "../css", ws.Options.OutputDirectory)
}

func TestLoader_Load_FromSubdirectory(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "options:\n  minifyOnSave: true\n")
	sub := filepath.Join(rootDir, "styles", "pages")
	require.NoError(t, os.MkdirAll(sub, domain.DirPerm))

	ws, err := newLoader(t).Load(sub)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(rootDir), ws.Root)
	assert.True(t, ws.Options.MinifyOnSave)
}

func TestLoader_Load_NoConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ws, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), ws.Root)
	assert.Equal(t, domain.DefaultOptions(), ws.Options)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "options: [unclosed")

	_, err := newLoader(t).Load(rootDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_RootOverride(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "root: site\n")

	ws, err := newLoader(t).Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootDir, "site"), ws.Root)
}

func TestLoader_DiscoverRoot_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newLoader(t).DiscoverRoot(t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}
