package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/favix/favix"
	"github.com/favix/favix/utils"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┌─┐┬  ┬┬─┐ ┬
├┤ ├─┤└┐┌┘│┌┴┬┘
└  ┴ ┴ └┘ ┴┴ └─

Favicon and web app icon generator.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

var (
	// Flags
	source   = flag.String("in", pipeName, "Source image (SVG, PNG, JPEG, GIF or BMP), file path or URL")
	output   = flag.String("out", ".", "Output directory")
	coverage = flag.String("coverage", "recommended", "Icon size coverage: required, recommended or extended")
	manifest = flag.Bool("manifest", false, "Generate a manifest.webmanifest file")
	links    = flag.Bool("links", false, "Generate an HTML snippet with the favicon <link> tags")
	metaFile = flag.String("meta", "", "YAML file with the app metadata used in the manifest")
	rasterOk = flag.Bool("raster-ok", false, "Allow raster sources despite quality concerns at large sizes")
	smallOk  = flag.Bool("small-ok", false, "Allow raster sources below the minimum dimension")
	watch    = flag.Bool("watch", false, "Watch the source file and regenerate on change")
	workers  = flag.Int("conc", runtime.NumCPU(), "Number of concurrently rendered sizes")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	tier, err := favix.ParseTier(*coverage)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	if *source == pipeName && term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal(utils.DecorateText("`-` should be used with a pipe for stdin", utils.ErrorMessage))
	}

	op := &favix.Ops{
		Source:      *source,
		Output:      *output,
		PipeName:    pipeName,
		Tier:        tier,
		AllowRaster: *rasterOk,
		AllowSmall:  *smallOk,
		Manifest:    *manifest,
		Links:       *links,
		MetaFile:    *metaFile,
	}
	g := &favix.Generator{Workers: *workers}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ FAVIX", utils.StatusMessage),
		utils.DecorateText("is generating the icon assets...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*80)

	// Capture CTRL-C and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	run(g, op)

	if *watch {
		if *source == pipeName || utils.IsValidUrl(*source) {
			log.Fatal(utils.DecorateText("watch mode requires a local source file", utils.ErrorMessage))
		}
		watchSource(g, op)
	}
}

// run executes one generation pass and prints its outcome.
func run(g *favix.Generator, op *favix.Ops) {
	now := time.Now()

	spinner.Start()
	report, err := g.Execute(op)
	spinner.Stop()

	if err != nil {
		log.Fatalf("%s%s",
			utils.DecorateText("\nError generating the icon assets: ", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("Warning:", utils.StatusMessage),
			utils.DecorateText(warning.String(), utils.DefaultMessage),
		)
	}
	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("Failed:", utils.ErrorMessage),
			utils.DecorateText(failure.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %s icons into: %s %s\n",
		utils.DecorateText(fmt.Sprintf("%d", len(report.Assets)), utils.SuccessMessage),
		utils.DecorateText(op.Output, utils.SuccessMessage),
		utils.DefaultColor,
	)
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// watchSource blocks and regenerates the assets each time the source file is
// rewritten. Editors replace files instead of writing in place, so the watch is
// set on the parent directory and events are filtered by name.
func watchSource(g *favix.Generator, op *favix.Ops) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	defer watcher.Close()

	src, err := filepath.Abs(op.Source)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText("Watching", utils.StatusMessage),
		utils.DecorateText(op.Source, utils.DefaultMessage))

	// Debounce bursts of events caused by a single save.
	var last time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != src {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(last) < 200*time.Millisecond {
				continue
			}
			last = time.Now()
			run(g, op)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
	}
}
