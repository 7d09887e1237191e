package favix

import (
	"errors"
	"fmt"
)

// Errors returned while loading the source image. Load errors are fatal to the
// whole run, there is nothing to retry.
var (
	ErrUnsupportedFormat   = errors.New("unsupported image format")
	ErrCorruptImage        = errors.New("corrupt image data")
	ErrImageTooSmall       = errors.New("source image is too small")
	ErrEmptyVectorDocument = errors.New("vector document has no drawable content")
)

// ErrRenderFailed is returned when a single target could not be rasterized.
// It aborts only that one target, never the whole batch.
var ErrRenderFailed = errors.New("render failed")

// Errors returned by the container packer. A pack error is fatal to the container
// output only, the individually rendered icons remain valid.
var (
	ErrEmptyContainer    = errors.New("no images to pack into the container")
	ErrDimensionTooLarge = errors.New("image dimension not representable in the container format")
	ErrPayloadEncoding   = errors.New("container payload encoding failed")
	ErrInvalidContainer  = errors.New("invalid container data")
)

// TargetError records the failure of a single target so the caller can tell
// which of the requested sizes could not be produced.
type TargetError struct {
	Spec TargetSpec
	Err  error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	return fmt.Sprintf("target %dx%d (%s): %v", e.Spec.Width, e.Spec.Height, e.Spec.Purpose, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// WarningKind enumerates the non-fatal conditions reported alongside a
// successful result.
type WarningKind int

const (
	// WarnLowQualityUpscale is reported when a raster source is scaled up past
	// 4x its shorter dimension. Generation continues.
	WarnLowQualityUpscale WarningKind = iota
)

// String implements the Stringer interface.
func (k WarningKind) String() string {
	switch k {
	case WarnLowQualityUpscale:
		return "low quality upscale"
	}
	return "unknown"
}

// Warning is a non-fatal condition attached to an otherwise successful target.
type Warning struct {
	Kind   WarningKind
	Spec   TargetSpec
	Detail string
}

// String implements the Stringer interface.
func (w Warning) String() string {
	return fmt.Sprintf("%s at %dx%d: %s", w.Kind, w.Spec.Width, w.Spec.Height, w.Detail)
}
