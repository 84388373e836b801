// SPDX-License-Identifier: MIT
// Command ndlabel labels the connected regions of a thresholded image and
// prints a JSON summary (region count, sizes, total perimeter) on stdout.
//
// Usage:
//
//	ndlabel -in cells.png [-out labels.png] [-config run.json]
//	        [-threshold 128] [-conn 4|8] [-mode constant] [-invert]
//	        [-remove-border] [-rsize 1] [-log-level info]
//
// Flags given on the command line override values from -config.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ndlabel/imageio"
	"github.com/katalvlaran/ndlabel/internal/config"
	"github.com/katalvlaran/ndlabel/internal/logger"
	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

var version = "dev"

// errUsage marks argument errors; the flag set has already printed usage.
var errUsage = errors.New("ndlabel: bad usage")

// Summary is the JSON document written to stdout.
type Summary struct {
	Input        string  `json:"input"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Threshold    uint8   `json:"threshold"`
	Connectivity int     `json:"connectivity"`
	Mode         string  `json:"mode"`
	Regions      int     `json:"regions"`
	Removed      int     `json:"removed"`
	Sizes        []int   `json:"sizes"`
	Perimeter    float64 `json:"perimeter"`
	Output       string  `json:"output,omitempty"`
}

type cliArgs struct {
	in, out, configPath string
	logLevel            string
	showVersion         bool
	overrides           *config.RunConfig
}

func parseArgs(args []string, stderr io.Writer) (*cliArgs, error) {
	fs := flag.NewFlagSet("ndlabel", flag.ContinueOnError)
	fs.SetOutput(stderr)

	a := &cliArgs{overrides: &config.RunConfig{}}
	fs.StringVar(&a.in, "in", "", "input image (png, jpeg, gif, bmp, tiff)")
	fs.StringVar(&a.out, "out", "", "write a colourized label image here")
	fs.StringVar(&a.configPath, "config", "", "JSON run configuration")
	fs.StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.BoolVar(&a.showVersion, "version", false, "print version and exit")

	threshold := fs.Int("threshold", config.DefaultThreshold, "foreground where luminance >= threshold")
	conn := fs.Int("conn", config.DefaultConnectivity, "connectivity, 4 or 8")
	mode := fs.String("mode", config.DefaultMode, "edge mode for the perimeter mask")
	invert := fs.Bool("invert", false, "treat dark pixels as foreground")
	removeBorder := fs.Bool("remove-border", false, "drop regions touching the image border")
	rsize := fs.Int("rsize", config.DefaultBorderSize, "border width used by -remove-border")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	// Only flags present on the command line override the configuration.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			a.overrides.Threshold = threshold
		case "conn":
			a.overrides.Connectivity = conn
		case "mode":
			a.overrides.Mode = mode
		case "invert":
			a.overrides.Invert = invert
		case "remove-border":
			a.overrides.RemoveBordering = removeBorder
		case "rsize":
			a.overrides.BorderSize = rsize
		}
	})

	if !a.showVersion && a.in == "" {
		fs.Usage()
		return nil, fmt.Errorf("%w: -in is required", errUsage)
	}

	return a, nil
}

// resolveConfig layers defaults, the optional file, then the flag overrides.
func resolveConfig(a *cliArgs) (*config.RunConfig, error) {
	cfg := config.Defaults()
	if a.configPath != "" {
		file, err := config.LoadRunConfig(a.configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(file)
	}
	cfg = cfg.Merge(a.overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func process(in string, cfg *config.RunConfig, log *logger.Logger) (*Summary, *labeled.LabelMap, error) {
	bw, err := imageio.LoadBinary(in, cfg.GetThreshold())
	if err != nil {
		return nil, nil, err
	}
	if cfg.GetInvert() {
		imageio.Invert(bw)
	}
	shape := bw.Shape()
	log.Debug("load", "binarized input", map[string]interface{}{
		"width": shape[1], "height": shape[0], "threshold": cfg.GetThreshold(),
	})

	elem, err := strel.Connectivity(bw.Ndim(), cfg.GetConnectivity())
	if err != nil {
		return nil, nil, err
	}
	L, n, err := labeled.Label(bw, labeled.WithStructuringElement(elem))
	if err != nil {
		return nil, nil, err
	}
	log.Info("label", "labeled image", map[string]interface{}{"regions": n})

	removed := 0
	if cfg.GetRemoveBordering() {
		if _, err = labeled.RemoveBordering(L, cfg.GetBorderSize(), labeled.InPlace); err != nil {
			return nil, nil, err
		}
		var kept int
		if _, kept, err = labeled.Relabel(L, labeled.InPlace); err != nil {
			return nil, nil, err
		}
		removed, n = n-kept, kept
		log.Info("edit", "removed border regions", map[string]interface{}{
			"removed": removed, "border_size": cfg.GetBorderSize(),
		})
	}

	sizes, err := labeled.Size(L)
	if err != nil {
		return nil, nil, err
	}
	perim, err := labeled.Perimeter(ndarray.Nonzero(L), cfg.GetConnectivity(), cfg.GetMode())
	if err != nil {
		return nil, nil, err
	}

	return &Summary{
		Input:        in,
		Width:        shape[1],
		Height:       shape[0],
		Threshold:    cfg.GetThreshold(),
		Connectivity: cfg.GetConnectivity(),
		Mode:         cfg.GetMode().String(),
		Regions:      n,
		Removed:      removed,
		Sizes:        append([]int{}, sizes[1:]...),
		Perimeter:    perim,
	}, L, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	a, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if a.showVersion {
		_, err = fmt.Fprintln(stdout, "ndlabel", version)
		return err
	}

	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	log := logger.New(stderr, level)

	cfg, err := resolveConfig(a)
	if err != nil {
		log.Error("config", "invalid configuration", err, map[string]interface{}{"path": a.configPath})
		return err
	}

	sum, L, err := process(a.in, cfg, log)
	if err != nil {
		log.Error("process", "labeling failed", err, map[string]interface{}{"input": a.in})
		return err
	}

	if a.out != "" {
		img, err := imageio.Colorize(L)
		if err != nil {
			return err
		}
		if err := imageio.Save(a.out, img); err != nil {
			log.Error("save", "writing label image failed", err, map[string]interface{}{"output": a.out})
			return err
		}
		sum.Output = a.out
		log.Debug("save", "wrote label image", map[string]interface{}{"output": a.out})
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "ndlabel:", err)
		}
		os.Exit(1)
	}
}
