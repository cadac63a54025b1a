//go:build !(cgo && libsass)

package libsass

import (
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Native stands in for the libsass binding in builds without the libsass tag.
type Native struct{}

// NewNative returns the stand-in binding.
func NewNative() *Native {
	return &Native{}
}

// CompileFile always fails with domain.ErrNativeUnavailable.
func (n *Native) CompileFile(source string, _ ports.NativeOptions) (string, error) {
	return "", zerr.With(domain.ErrNativeUnavailable, "source", source)
}
