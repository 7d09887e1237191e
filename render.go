package favix

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/favix/favix/utils"
	"github.com/srwiley/rasterx"
)

// RasterImage is a square RGBA bitmap rendered for a single target. The pixel
// buffer is produced once and never mutated afterwards.
type RasterImage struct {
	Width  int
	Height int
	Img    *image.NRGBA
}

// upscaleLimit is the factor past which upscaling a raster source is flagged
// as a low quality operation.
const upscaleLimit = 4

// Render rasterizes the source image at the target dimension, producing a square
// RGBA buffer of exactly target.Width x target.Width pixels. Non square sources
// are fitted inside the target square and centered, padding the rest with fully
// transparent pixels. The returned warnings are non-fatal.
func Render(src *SourceImage, target TargetSpec) (*RasterImage, []Warning, error) {
	size := target.Width
	if size < 1 {
		return nil, nil, fmt.Errorf("%w: invalid target size %d", ErrRenderFailed, size)
	}

	if src.IsVector() {
		img, err := renderVector(src, size)
		if err != nil {
			return nil, nil, err
		}
		return &RasterImage{Width: size, Height: size, Img: img}, nil, nil
	}

	img, warnings := renderRaster(src, target)
	return &RasterImage{Width: size, Height: size, Img: img}, warnings, nil
}

// renderVector draws the vector document directly at the device pixel size, so
// each target gets resolution appropriate antialiasing instead of a rescaled
// copy of a previous rasterization.
func renderVector(src *SourceImage, size int) (img *image.NRGBA, err error) {
	src.mu.Lock()
	defer src.mu.Unlock()

	// oksvg panics on malformed path geometry instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrRenderFailed, r)
		}
	}()

	vb := src.vector.ViewBox
	scale := math.Min(float64(size)/vb.W, float64(size)/vb.H)
	w := vb.W * scale
	h := vb.H * scale
	x := (float64(size) - w) / 2
	y := (float64(size) - h) / 2

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	src.vector.SetTarget(x, y, w, h)
	src.vector.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return imgToNRGBA(rgba), nil
}

// renderRaster resamples a raster source into the target square. Downscaling
// uses the Lanczos filter to avoid aliasing, upscaling uses Catmull-Rom.
func renderRaster(src *SourceImage, target TargetSpec) (*image.NRGBA, []Warning) {
	size := target.Width
	sw, sh := src.width, src.height

	// An exact size match returns the source pixels untouched, skipping the
	// resampling pass which would otherwise blur the image.
	if sw == size && sh == size {
		return cloneNRGBA(src.raster), nil
	}

	var warnings []Warning
	if shorter := utils.Min(sw, sh); size > shorter*upscaleLimit {
		warnings = append(warnings, Warning{
			Kind: WarnLowQualityUpscale,
			Spec: target,
			Detail: fmt.Sprintf("target size %d exceeds %dx the source's shorter dimension %d",
				size, upscaleLimit, shorter),
		})
	}

	filter := imaging.Lanczos
	longer := utils.Max(sw, sh)
	if size > longer {
		filter = imaging.CatmullRom
	}

	scale := float64(size) / float64(longer)
	w := utils.Max(int(math.Round(float64(sw)*scale)), 1)
	h := utils.Max(int(math.Round(float64(sh)*scale)), 1)
	resized := imgToNRGBA(imaging.Resize(src.raster, w, h, filter))

	if w == size && h == size {
		return resized, warnings
	}

	canvas := imaging.New(size, size, color.NRGBA{})
	return imaging.PasteCenter(canvas, resized), warnings
}
