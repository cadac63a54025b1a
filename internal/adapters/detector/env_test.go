package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/detector"
	"go.trai.ch/sassy/internal/core/domain"
)

func TestDetectEnvironment_NonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment(f))
	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment(nil))
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.FormatJSON, detector.DetectEnvironment(os.Stderr))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag string
		want detector.LogFormat
	}{
		{flag: "", want: detector.FormatAuto},
		{flag: "auto", want: detector.FormatAuto},
		{flag: "pretty", want: detector.FormatPretty},
		{flag: "json", want: detector.FormatJSON},
	}

	for _, tt := range tests {
		got, err := detector.ParseFormat(tt.flag)
		require.NoError(t, err, tt.flag)
		assert.Equal(t, tt.want, got, tt.flag)
	}

	_, err := detector.ParseFormat("xml")
	assert.ErrorContains(t, err, domain.ErrInvalidLogFormat.Error())
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, detector.FormatPretty, detector.ResolveFormat(detector.FormatPretty, detector.FormatAuto))
	assert.Equal(t, detector.FormatJSON, detector.ResolveFormat(detector.FormatPretty, detector.FormatJSON))
	assert.Equal(t, detector.FormatPretty, detector.ResolveFormat(detector.FormatJSON, detector.FormatPretty))
}
