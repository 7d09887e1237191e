package favix

import (
	"fmt"
	"runtime"
	"sync"
)

// maxWorkers caps the number of concurrently running render workers.
const maxWorkers = 20

// IconAsset is one successfully generated icon together with its encoded bytes.
type IconAsset struct {
	Spec  TargetSpec
	Image *RasterImage
	PNG   []byte
}

// Report collects everything produced during a single generation run. Every
// requested target is accounted for, either as an asset or as a failure.
type Report struct {
	Assets    []IconAsset
	Failures  []*TargetError
	Warnings  []Warning
	Container []byte
}

type renderFunc func(*SourceImage, TargetSpec) (*RasterImage, []Warning, error)

// Generator drives the generation pipeline: it resolves the target list for the
// requested tier, renders every target against the shared read-only source and
// packs the container-tagged subset into the ICO byte stream.
type Generator struct {
	// Workers limits the concurrently rendered targets.
	// Values outside of (0, maxWorkers] fall back to the number of CPUs.
	Workers int

	// render produces a single target. Tests replace it to simulate
	// per-target failures, nil means Render.
	render renderFunc
}

// renderResult holds the outcome of rendering one unique width.
type renderResult struct {
	img      *RasterImage
	png      []byte
	warnings []Warning
	err      error
}

// Generate renders every target of the tier and packs the legacy container.
// A failing target never aborts the others. The returned error is non-nil only
// when the container packing step itself failed, in which case the report still
// carries all individually rendered assets.
func (g *Generator) Generate(src *SourceImage, tier CoverageTier) (*Report, error) {
	specs := TargetSizes(tier)

	render := g.render
	if render == nil {
		render = Render
	}
	workers := g.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	// Render each unique width only once; every purpose slot of that width
	// reuses the same pixels and the same PNG payload.
	var reps []TargetSpec
	byWidth := make(map[int]int)
	for _, spec := range specs {
		if _, ok := byWidth[spec.Width]; !ok {
			byWidth[spec.Width] = len(reps)
			reps = append(reps, spec)
		}
	}

	results := make([]renderResult, len(reps))
	jobs := make(chan int, len(reps))
	for idx := range reps {
		jobs <- idx
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				img, warnings, err := render(src, reps[idx])
				var data []byte
				if err == nil {
					data, err = encodePNG(img.Img)
				}
				results[idx] = renderResult{img: img, png: data, warnings: warnings, err: err}
			}
		}()
	}
	wg.Wait()

	report := &Report{}
	var (
		containerImages   []*RasterImage
		containerExpected bool
		warningsMerged    = make(map[int]bool)
	)
	for _, spec := range specs {
		idx := byWidth[spec.Width]
		res := &results[idx]

		if !warningsMerged[idx] {
			warningsMerged[idx] = true
			report.Warnings = append(report.Warnings, res.warnings...)
		}
		if spec.Purpose == PurposeLegacyContainer {
			containerExpected = true
		}
		if res.err != nil {
			report.Failures = append(report.Failures, &TargetError{Spec: spec, Err: res.err})
			continue
		}

		report.Assets = append(report.Assets, IconAsset{Spec: spec, Image: res.img, PNG: res.png})
		if spec.Purpose == PurposeLegacyContainer {
			containerImages = append(containerImages, res.img)
		}
	}

	// Container assembly starts only once every input destined for it is
	// available; a partially packed buffer is never handed out.
	if containerExpected {
		container, err := PackICO(containerImages)
		if err != nil {
			return report, fmt.Errorf("packing the icon container: %w", err)
		}
		report.Container = container
	}
	return report, nil
}
