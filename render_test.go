package favix

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_ExactSizeMatchSkipsResampling(t *testing.T) {
	assert := assert.New(t)

	src := loadRasterFixture(t, 64, 64, red)
	// Vary a few pixels so a resampling pass could not go unnoticed.
	src.raster.SetNRGBA(3, 5, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40})
	src.raster.SetNRGBA(60, 60, color.NRGBA{G: 0xff, A: 0xff})

	out, warnings, err := Render(src, TargetSpec{Width: 64, Height: 64, Purpose: PurposeFavicon})
	assert.NoError(err)
	assert.Empty(warnings)
	assert.Equal(64, out.Width)
	assert.Equal(src.raster.Pix, out.Img.Pix)

	// The output buffer must be a copy, not an alias of the source.
	out.Img.Pix[0] ^= 0xff
	assert.NotEqual(src.raster.Pix[0], out.Img.Pix[0])
}

func TestRender_DownscaleSolidColor(t *testing.T) {
	assert := assert.New(t)

	src := loadRasterFixture(t, 512, 512, red)
	for _, size := range []int{16, 32, 180, 192} {
		out, warnings, err := Render(src, TargetSpec{Width: size, Height: size, Purpose: PurposeFavicon})
		assert.NoError(err)
		assert.Empty(warnings)
		assert.Equal(size*size*4, len(out.Img.Pix))

		for i := 0; i < len(out.Img.Pix); i += 4 {
			assert.Equal(uint8(0xff), out.Img.Pix[i], "red channel at offset %d", i)
			assert.Equal(uint8(0xff), out.Img.Pix[i+3], "alpha channel at offset %d", i)
		}
	}
}

func TestRender_UpscaleWarning(t *testing.T) {
	assert := assert.New(t)

	src := loadRasterFixture(t, 64, 64, red)

	// 256 is exactly 4x the shorter dimension, still fine.
	_, warnings, err := Render(src, TargetSpec{Width: 256, Height: 256, Purpose: PurposePwa})
	assert.NoError(err)
	assert.Empty(warnings)

	// 512 goes past the limit and must be flagged, but not rejected.
	out, warnings, err := Render(src, TargetSpec{Width: 512, Height: 512, Purpose: PurposePwa})
	assert.NoError(err)
	assert.Len(warnings, 1)
	assert.Equal(WarnLowQualityUpscale, warnings[0].Kind)
	assert.Equal(512, warnings[0].Spec.Width)
	assert.Equal(512, out.Width)
}

func TestRender_RasterLetterbox(t *testing.T) {
	assert := assert.New(t)

	src := loadRasterFixture(t, 128, 64, red)
	out, _, err := Render(src, TargetSpec{Width: 64, Height: 64, Purpose: PurposeFavicon})
	assert.NoError(err)

	// The 2:1 source is fitted to 64x32 and centered: rows 0-15 and 48-63
	// stay fully transparent, the middle rows are opaque red.
	assert.Equal(uint8(0), out.Img.NRGBAAt(32, 4).A)
	assert.Equal(uint8(0), out.Img.NRGBAAt(32, 60).A)

	center := out.Img.NRGBAAt(32, 32)
	assert.Equal(uint8(0xff), center.A)
	assert.Equal(uint8(0xff), center.R)
}

func TestRender_VectorLetterbox(t *testing.T) {
	assert := assert.New(t)

	src, err := LoadSource([]byte(testSVG), FormatSVG, LoadOptions{})
	assert.NoError(err)

	out, warnings, err := Render(src, TargetSpec{Width: 64, Height: 64, Purpose: PurposeFavicon})
	assert.NoError(err)
	assert.Empty(warnings)
	assert.Equal(64, out.Width)
	assert.Equal(64*64*4, len(out.Img.Pix))

	// 100x50 viewport rendered into 64x64: a 64x32 band centered vertically,
	// transparent padding above and below. Sample away from the antialiased
	// edges.
	assert.Equal(uint8(0), out.Img.NRGBAAt(32, 8).A)
	assert.Equal(uint8(0), out.Img.NRGBAAt(32, 56).A)

	center := out.Img.NRGBAAt(32, 32)
	assert.Equal(uint8(0xff), center.A)
	assert.Equal(uint8(0xff), center.R)
	assert.Equal(uint8(0), center.G)
}

func TestRender_VectorDeterministic(t *testing.T) {
	assert := assert.New(t)

	src, err := LoadSource([]byte(testSVG), FormatSVG, LoadOptions{})
	assert.NoError(err)

	spec := TargetSpec{Width: 48, Height: 48, Purpose: PurposeFavicon}
	first, _, err := Render(src, spec)
	assert.NoError(err)
	second, _, err := Render(src, spec)
	assert.NoError(err)
	assert.Equal(first.Img.Pix, second.Img.Pix)
}

func TestRender_InvalidTargetSize(t *testing.T) {
	src := loadRasterFixture(t, 64, 64, red)
	_, _, err := Render(src, TargetSpec{Width: 0, Height: 0, Purpose: PurposeFavicon})
	assert.ErrorIs(t, err, ErrRenderFailed)
}
