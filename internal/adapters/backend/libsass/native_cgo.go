//go:build cgo && libsass

package libsass

// #cgo LDFLAGS: -lsass
// #include <stdlib.h>
// #include <sass/context.h>
import "C"

import (
	"unsafe"

	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Native is the cgo binding to the system libsass.
type Native struct{}

// NewNative returns the libsass binding.
func NewNative() *Native {
	return &Native{}
}

// CompileFile compiles source with nested output style.
func (n *Native) CompileFile(source string, opts ports.NativeOptions) (string, error) {
	path := C.CString(source)
	defer C.free(unsafe.Pointer(path))

	fileCtx := C.sass_make_file_context(path)
	defer C.sass_delete_file_context(fileCtx)

	options := C.sass_file_context_get_options(fileCtx)
	C.sass_option_set_output_style(options, C.SASS_STYLE_NESTED)
	C.sass_option_set_source_comments(options, C.bool(opts.IncludeSourceComments))

	C.sass_compile_file_context(fileCtx)

	ctx := C.sass_file_context_get_context(fileCtx)
	if C.sass_context_get_error_status(ctx) != 0 {
		msg := C.GoString(C.sass_context_get_error_message(ctx))
		return "", zerr.Wrap(zerr.New(msg), domain.ErrNativeCompileFailed.Error())
	}

	return C.GoString(C.sass_context_get_output_string(ctx)), nil
}
