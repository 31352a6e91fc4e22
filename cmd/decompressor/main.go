// decompressor reconstructs a PNG image from a binary Blaschke Fourier
// transform container produced by compressor.
//
// Usage:
//
//	decompressor [options] source
//
// Options:
//
//	-name <file>   output filename (default: source with extension .png)
//	-h             show usage information
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
)

func main() {
	name := flag.String("name", "", "output filename (default: source with .png extension)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: decompressor [options] source\n\n")
		fmt.Fprintf(os.Stderr, "Reconstruct a PNG image from a BFT container file.\n\n")
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

	if err := run(source, *name); err != nil {
		fmt.Fprintf(os.Stderr, "decompressor: %v\n", err)
		os.Exit(1)
	}
}

func run(source, name string) error {
	buf, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading %q: %w", source, err)
	}

	fmt.Println("Start decompressing.")

	ci, err := img.Decode(buf)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", source, err)
	}

	planes := img.DecompressChannels(ci)
	out := img.Recompose(planes)

	savePath := strings.TrimSuffix(source, filepath.Ext(source)) + ".png"
	if name != "" {
		savePath = filepath.Join(filepath.Dir(source), name)
	}

	if err := img.Save(out, savePath); err != nil {
		return fmt.Errorf("writing %q: %w", savePath, err)
	}

	fmt.Println("Decompressing finished.")
	return nil
}
