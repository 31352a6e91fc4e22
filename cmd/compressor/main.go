// compressor compresses a raster image into the binary Blaschke Fourier
// transform container format.
//
// Usage:
//
//	compressor [options] source
//
// Options:
//
//	-channels <1-4>   number of channels to keep (1=gray, 2=gray+alpha,
//	                  3=RGB, 4=RGBA); default is the source image's native
//	                  channel count
//	-ratio <float>    fraction of transform coefficients to retain, in (0,1]
//	-resize <mode>    "simple" or "linear-interpolation" (default)
//	-no-opt           skip the per-level Blaschke parameter search
//	-lvl <0-3>        optimizer search depth preset
//	-block <8-128>    square block edge length
//	-name <file>      output filename (default: source's basename with .bc)
//	-h                show usage information
//
// Exit codes:
//
//	0: success
//	1: argument or processing error
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vargapeter25/BFFT/img"
	"github.com/vargapeter25/BFFT/transform"
)

func main() {
	channels := flag.Int("channels", 0, "number of channels to keep (1-4); default is the source's native count")
	ratio := flag.Float64("ratio", 0.5, "fraction of transform coefficients to retain, in (0,1]")
	resizeMode := flag.String("resize", "linear-interpolation", `resize strategy: "simple" or "linear-interpolation"`)
	noOpt := flag.Bool("no-opt", false, "skip the per-level Blaschke parameter search")
	lvl := flag.Int("lvl", 3, "optimizer search depth preset (0-3)")
	block := flag.Int("block", img.DefaultBlockSize, "square block edge length (8-128)")
	name := flag.String("name", "", "output filename (default: source's basename with .bc extension)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: compressor [options] source\n\n")
		fmt.Fprintf(os.Stderr, "Compress a raster image into the binary BFT container format.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	source := args[0]

	if err := run(source, *channels, *ratio, *resizeMode, *noOpt, *lvl, *block, *name); err != nil {
		fmt.Fprintf(os.Stderr, "compressor: %v\n", err)
		os.Exit(1)
	}
}

func run(source string, channels int, ratio float64, resizeMode string, noOpt bool, lvl, block int, name string) error {
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("source %q: %w", source, err)
	}
	if ratio <= 0 || ratio > 1 {
		return fmt.Errorf("-ratio must be in (0,1], got %v", ratio)
	}
	if channels != 0 && (channels < 1 || channels > 4) {
		return fmt.Errorf("-channels must be in [1,4], got %d", channels)
	}
	if lvl < 0 || lvl > 3 {
		return fmt.Errorf("-lvl must be in [0,3], got %d", lvl)
	}
	if block < img.MinBlockSize || block > img.MaxBlockSize {
		return fmt.Errorf("-block must be in [%d,%d], got %d", img.MinBlockSize, img.MaxBlockSize, block)
	}

	var mode transform.Mode
	switch resizeMode {
	case "simple":
		mode = transform.Resize
	case "linear-interpolation":
		mode = transform.LinearInterpolation
	default:
		return fmt.Errorf(`-resize must be "simple" or "linear-interpolation", got %q`, resizeMode)
	}

	im, err := img.Load(source)
	if err != nil {
		return err
	}

	if channels == 0 {
		channels = img.NativeChannels(im)
	}

	optimizer := img.NelderMeadOptimize
	if noOpt {
		optimizer = img.NoOptimize
	}

	planes := img.Planes(im, channels)
	opts := img.CompressOptions{
		Ratio:     ratio,
		Mode:      mode,
		BlockSize: block,
		Optimizer: optimizer,
		LevelFlag: lvl,
	}

	fmt.Println("Start compressing (this may take a while).")

	ci, err := img.CompressChannels(planes, opts)
	if err != nil {
		return fmt.Errorf("compressing %q: %w", source, err)
	}

	savePath := strings.TrimSuffix(source, filepath.Ext(source)) + ".bc"
	if name != "" {
		savePath = filepath.Join(filepath.Dir(source), name)
	}

	if err := os.WriteFile(savePath, img.Encode(ci), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", savePath, err)
	}

	fmt.Println("Compressing finished.")
	return nil
}
