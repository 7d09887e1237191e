package favix

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"sync"

	"github.com/srwiley/oksvg"
	"golang.org/x/image/bmp"
)

// Format identifies the encoding of the source image bytes.
type Format int

const (
	FormatUnknown Format = iota
	FormatSVG
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
)

// String implements the Stringer interface.
func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	}
	return "unknown"
}

// MinRasterSize is the minimum width and height accepted for raster sources.
// Vector sources rescale losslessly and are exempt from the check.
const MinRasterSize = 64

// LoadOptions alters the source validation rules.
type LoadOptions struct {
	// AllowSmall disables the minimum raster dimension check.
	AllowSmall bool
}

// SourceImage is the in-memory representation of a decoded raster image or a
// parsed vector document. It is created once per invocation and never modified
// afterwards, so it can be shared between concurrently rendered targets.
type SourceImage struct {
	raster *image.NRGBA
	vector *oksvg.SvgIcon

	// mu guards the vector icon: oksvg updates the icon transform while
	// drawing, so concurrent renders of the same document must serialize.
	mu sync.Mutex

	width  int
	height int
}

// IsVector reports whether the source is a parsed vector document.
func (s *SourceImage) IsVector() bool {
	return s.vector != nil
}

// Width returns the natural width of the source in pixels.
func (s *SourceImage) Width() int {
	return s.width
}

// Height returns the natural height of the source in pixels.
func (s *SourceImage) Height() int {
	return s.height
}

// DetectFormat sniffs the image format from the content bytes. SVG documents are
// recognized before the MIME sniffer runs since they are reported as plain XML.
func DetectFormat(data []byte) Format {
	if looksLikeSVG(data) {
		return FormatSVG
	}
	switch http.DetectContentType(data) {
	case "image/png":
		return FormatPNG
	case "image/jpeg":
		return FormatJPEG
	case "image/gif":
		return FormatGIF
	case "image/bmp":
		return FormatBMP
	}
	return FormatUnknown
}

// looksLikeSVG checks for an <svg root element within the sniffing window.
func looksLikeSVG(data []byte) bool {
	probe := data
	if len(probe) > 512 {
		probe = probe[:512]
	}
	probe = bytes.TrimLeft(probe, " \t\r\n\xef\xbb\xbf")
	if !bytes.HasPrefix(probe, []byte("<")) {
		return false
	}
	return bytes.Contains(probe, []byte("<svg"))
}

// LoadSource decodes the raw source bytes into a SourceImage. Vector documents
// are parsed once and kept as a tree, rasterization is deferred to render time so
// every target is drawn at its own resolution instead of being rescaled from a
// previously rasterized copy.
func LoadSource(data []byte, format Format, opts LoadOptions) (*SourceImage, error) {
	if format == FormatSVG {
		return loadVector(data)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrCorruptImage)
	}

	img, err := decodeRaster(data, format)
	if err != nil {
		return nil, err
	}

	nrgba := imgToNRGBA(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: zero sized image", ErrCorruptImage)
	}
	if !opts.AllowSmall && (w < MinRasterSize || h < MinRasterSize) {
		return nil, fmt.Errorf("%w: got %dx%d, need at least %dx%d",
			ErrImageTooSmall, w, h, MinRasterSize, MinRasterSize)
	}

	return &SourceImage{raster: nrgba, width: w, height: h}, nil
}

func loadVector(data []byte) (*SourceImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrEmptyVectorDocument)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: zero drawable extent", ErrEmptyVectorDocument)
	}
	return &SourceImage{
		vector: icon,
		width:  int(math.Round(icon.ViewBox.W)),
		height: int(math.Round(icon.ViewBox.H)),
	}, nil
}

func decodeRaster(data []byte, format Format) (image.Image, error) {
	r := bytes.NewReader(data)

	var (
		img image.Image
		err error
	)
	switch format {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}
	return img, nil
}
