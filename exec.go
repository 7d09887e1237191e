package favix

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/favix/favix/utils"
)

// ContainerFileName is the name of the multi-resolution container output.
const ContainerFileName = "favicon.ico"

// Ops bundles the file level options of one execution.
type Ops struct {
	Source   string
	Output   string
	PipeName string

	Tier        CoverageTier
	AllowRaster bool
	AllowSmall  bool
	Manifest    bool
	Links       bool
	MetaFile    string
}

// FileName returns the file name an asset is written to. Container slots are
// not written individually, they only exist inside favicon.ico.
func FileName(spec TargetSpec) string {
	switch spec.Purpose {
	case PurposeApple:
		return fmt.Sprintf("apple-touch-icon-%dx%d.png", spec.Width, spec.Height)
	case PurposeAndroid:
		return fmt.Sprintf("android-chrome-%dx%d.png", spec.Width, spec.Height)
	case PurposePwa:
		return fmt.Sprintf("icon-%dx%d.png", spec.Width, spec.Height)
	case PurposeWindows:
		return fmt.Sprintf("mstile-%dx%d.png", spec.Width, spec.Height)
	}
	return fmt.Sprintf("favicon-%dx%d.png", spec.Width, spec.Height)
}

// Execute runs the whole generation against the source named by op and writes
// every produced asset into the output directory. The returned report is
// non-nil whenever generation ran, even if the container could not be packed.
func (g *Generator) Execute(op *Ops) (*Report, error) {
	data, err := readSource(op)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(data)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: could not detect the source format", ErrUnsupportedFormat)
	}
	if format != FormatSVG && !op.AllowRaster {
		return nil, errors.New("raster source detected, supply an SVG for best results or enable the raster override")
	}

	src, err := LoadSource(data, format, LoadOptions{AllowSmall: op.AllowSmall})
	if err != nil {
		return nil, err
	}

	report, genErr := g.Generate(src, op.Tier)

	// The individually rendered icons stay valid even when packing failed,
	// so the outputs are written before the pack error is surfaced.
	if err := os.MkdirAll(op.Output, 0755); err != nil {
		return report, fmt.Errorf("unable to create the output directory: %w", err)
	}
	if err := writeOutputs(op, report); err != nil {
		return report, err
	}
	return report, genErr
}

func readSource(op *Ops) ([]byte, error) {
	if op.PipeName != "" && op.Source == op.PipeName {
		return io.ReadAll(os.Stdin)
	}
	if utils.IsValidUrl(op.Source) {
		return utils.DownloadImage(op.Source)
	}

	data, err := os.ReadFile(op.Source)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return data, nil
}

func writeOutputs(op *Ops, report *Report) error {
	for _, asset := range report.Assets {
		if asset.Spec.Purpose == PurposeLegacyContainer {
			continue
		}
		name := filepath.Join(op.Output, FileName(asset.Spec))
		if err := os.WriteFile(name, asset.PNG, 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
	}

	if len(report.Container) > 0 {
		name := filepath.Join(op.Output, ContainerFileName)
		if err := os.WriteFile(name, report.Container, 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
	}

	if op.Manifest {
		meta := DefaultAppMeta()
		if op.MetaFile != "" {
			raw, err := os.ReadFile(op.MetaFile)
			if err != nil {
				return fmt.Errorf("unable to open the metadata file: %w", err)
			}
			if meta, err = LoadAppMeta(raw); err != nil {
				return err
			}
		}
		data, err := BuildManifest(meta, report.Assets).Encode()
		if err != nil {
			return fmt.Errorf("unable to encode the manifest: %w", err)
		}
		name := filepath.Join(op.Output, "manifest.webmanifest")
		if err := os.WriteFile(name, data, 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
	}

	if op.Links {
		html := RenderLinks(LinkTags(report, ""))
		name := filepath.Join(op.Output, "favicon-links.html")
		if err := os.WriteFile(name, []byte(html), 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
	}
	return nil
}
