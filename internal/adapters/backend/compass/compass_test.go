package compass_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/backend/compass"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeProject(t *testing.T, config string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, compass.ConfigFile), []byte(config), domain.PrivateFilePerm))
	return root
}

func TestFindProjectRoot(t *testing.T) {
	t.Parallel()

	root := writeProject(t, "")
	nested := filepath.Join(root, "sass", "pages")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	got, ok := compass.FindProjectRoot(nested)
	require.True(t, ok)
	assert.Equal(t, root, got)

	_, ok = compass.FindProjectRoot(t.TempDir())
	assert.False(t, ok)
}

func TestLoadProject_Settings(t *testing.T) {
	t.Parallel()

	root := writeProject(t, `
http_path = "/"
css_dir = "public/css"
sass_dir = 'src/sass'
images_dir = "images"
`)

	p, err := compass.LoadProject(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("public", "css"), p.CSSDir)
	assert.Equal(t, filepath.Join("src", "sass"), p.SassDir)
}

func TestLoadProject_Defaults(t *testing.T) {
	t.Parallel()

	p, err := compass.LoadProject(writeProject(t, "# nothing set\n"))
	require.NoError(t, err)
	assert.Equal(t, "stylesheets", p.CSSDir)
	assert.Equal(t, "sass", p.SassDir)
}

func TestBackend_OutputPath(t *testing.T) {
	t.Parallel()

	root := writeProject(t, "css_dir = \"css\"\n")
	b := compass.New(nil, "compass")

	assert.Equal(t,
		filepath.Join(root, "css", "pages", "home.css"),
		b.OutputPath(filepath.Join(root, "sass", "pages", "home.scss")))
	assert.Equal(t,
		filepath.Join(root, "css", "loose.css"),
		b.OutputPath(filepath.Join(root, "other", "loose.scss")))
	assert.Empty(t, b.OutputPath(filepath.Join(t.TempDir(), "orphan.scss")))
}

func TestBackend_Compile(t *testing.T) {
	t.Parallel()

	root := writeProject(t, "")
	source := filepath.Join(root, "sass", "site.scss")

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), domain.Command{
			Path: "/usr/bin/compass",
			Args: []string{"compile", root, source},
			Dir:  root,
		}).
		Return([]byte("write stylesheets/site.css"), nil)

	b := compass.New(runner, "/usr/bin/compass")
	assert.Equal(t, domain.BackendCompass, b.Kind())
	require.NoError(t, b.Compile(t.Context(), source, b.OutputPath(source)))
}

func TestBackend_CompileFailure(t *testing.T) {
	t.Parallel()

	root := writeProject(t, "")
	source := filepath.Join(root, "sass", "site.scss")

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("exit status 1"))

	err := compass.New(runner, "compass").Compile(t.Context(), source, "")
	assert.ErrorContains(t, err, "exit status 1")
}

func TestBackend_CompileOutsideProject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	err := compass.New(runner, "compass").Compile(t.Context(), filepath.Join(t.TempDir(), "a.scss"), "")
	assert.ErrorContains(t, err, domain.ErrCompassConfigMissing.Error())
}
