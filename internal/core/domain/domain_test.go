package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sassy/internal/core/domain"
)

func TestNewSourceDocument(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		partial bool
	}{
		{name: "root document", path: filepath.Join("styles", "site.scss"), partial: false},
		{name: "partial document", path: filepath.Join("styles", "_partials.scss"), partial: true},
		{name: "underscore in directory only", path: filepath.Join("_styles", "site.scss"), partial: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.NewSourceDocument(tt.path)
			assert.Equal(t, tt.path, doc.Path)
			assert.Equal(t, tt.partial, doc.IsPartial)
		})
	}
}

func TestIsStylesheetSource(t *testing.T) {
	assert.True(t, domain.IsStylesheetSource("site.scss"))
	assert.True(t, domain.IsStylesheetSource("SITE.SCSS"))
	assert.False(t, domain.IsStylesheetSource("site.css"))
	assert.False(t, domain.IsStylesheetSource("site.scss.bak"))
	assert.False(t, domain.IsStylesheetSource("scss"))
}

func TestIsRootStylesheet(t *testing.T) {
	assert.True(t, domain.IsRootStylesheet("/p/site.scss"))
	assert.False(t, domain.IsRootStylesheet("/p/_vars.scss"))
	assert.False(t, domain.IsRootStylesheet("/p/site.less"))
}

func TestMinifiedPath(t *testing.T) {
	got := domain.MinifiedPath(filepath.Join("out", "style.css"))
	assert.Equal(t, filepath.Join("out", "style.min.css"), got)
}

func TestOptions_Registration(t *testing.T) {
	opts := domain.DefaultOptions()
	assert.True(t, opts.GenerateOnSave)
	assert.False(t, opts.ShouldRegister())
	assert.Equal(t, domain.BuildActionNone, opts.RegistrationAction())

	opts.IncludeInProject = true
	assert.True(t, opts.ShouldRegister())

	opts.IncludeInProjectOutput = true
	assert.Equal(t, domain.BuildActionContent, opts.RegistrationAction())
	assert.Equal(t, "Content", opts.RegistrationAction().String())

	opts.OutputDirectory = "css"
	assert.False(t, opts.ShouldRegister())
}

func TestCompileResult_Succeeded(t *testing.T) {
	assert.True(t, domain.CompileResult{OutputPath: "a.css"}.Succeeded())
	assert.False(t, domain.CompileResult{Skipped: true}.Succeeded())
	assert.False(t, domain.CompileResult{Err: domain.ErrCompileFailed}.Succeeded())
}
