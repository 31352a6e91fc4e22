package img

import (
	"fmt"

	"github.com/vargapeter25/BFFT/bmatrix"
	"github.com/vargapeter25/BFFT/compressor"
	"github.com/vargapeter25/BFFT/internal/parallel"
	"github.com/vargapeter25/BFFT/optimize"
	"github.com/vargapeter25/BFFT/transform"
)

// Optimizer selects whether each block searches for a per-level Blaschke
// parameter before compressing, or just compresses with the zero parameter
// (P = 0) at every level.
type Optimizer int

const (
	// NoOptimize skips the parameter search entirely.
	NoOptimize Optimizer = iota
	// NelderMeadOptimize runs the coarse-grid-plus-refine search per level.
	NelderMeadOptimize
)

// CompressOptions configures how a channel plane is tiled, transformed and
// compressed.
type CompressOptions struct {
	Ratio      float64
	Mode       transform.Mode
	BlockSize  int
	Optimizer  Optimizer
	LevelFlag  int // maps to optimize.LevelPreset
	MaxWorkers int // 0 means unbounded
}

// CompressedImage is every compressed channel plane that makes up one image.
type CompressedImage struct {
	Channels []BlockedChannel
}

// CompressPlane tiles plane into opts.BlockSize blocks and compresses each
// one independently and concurrently, aborting the whole batch if any block
// fails.
func CompressPlane(plane *bmatrix.Matrix[complex128], opts CompressOptions) (BlockedChannel, error) {
	specs := blockSpecs(plane.Rows(), plane.Cols(), opts.BlockSize)

	blocks, err := parallel.Run(len(specs), parallel.Config{NumWorkers: opts.MaxWorkers}, func(i int) (CompressedBlock, error) {
		spec := specs[i]
		block := extractBlock(plane, spec.offsetRow, spec.offsetCol, opts.BlockSize)

		sys := transform.NewSystem2D()
		if opts.Optimizer == NelderMeadOptimize {
			nm := optimize.LevelPreset(opts.LevelFlag)
			optimize.OptimizeBlaschke2D(block, sys, opts.Ratio, opts.Mode, 4, 3, nm)
		}

		c := compressor.NewCompressor2D(sys, opts.Ratio, opts.Mode)
		data := c.Compress(block)

		return CompressedBlock{
			OffsetRow: spec.offsetRow,
			OffsetCol: spec.offsetCol,
			Rows:      spec.rows,
			Cols:      spec.cols,
			Data:      data,
		}, nil
	})
	if err != nil {
		return BlockedChannel{}, fmt.Errorf("img: compressing plane: %w", err)
	}

	return BlockedChannel{Blocks: blocks, Rows: plane.Rows(), Cols: plane.Cols()}, nil
}

// DecompressPlane reassembles a channel plane from its compressed blocks.
func DecompressPlane(bc BlockedChannel) *bmatrix.Matrix[complex128] {
	out := bmatrix.New[complex128](bc.Rows, bc.Cols)
	for _, block := range bc.Blocks {
		full := compressor.Decompress2D(block.Data)
		cropped := full.CopyToZeros(block.Rows, block.Cols)
		out = bmatrix.CopyToPos(out, cropped, block.OffsetRow, block.OffsetCol)
	}
	return out
}

// CompressChannels compresses every channel plane independently.
func CompressChannels(planes []*bmatrix.Matrix[complex128], opts CompressOptions) (CompressedImage, error) {
	channels := make([]BlockedChannel, len(planes))
	for i, plane := range planes {
		bc, err := CompressPlane(plane, opts)
		if err != nil {
			return CompressedImage{}, fmt.Errorf("img: channel %d: %w", i, err)
		}
		channels[i] = bc
	}
	return CompressedImage{Channels: channels}, nil
}

// DecompressChannels reassembles every channel plane from a CompressedImage.
func DecompressChannels(ci CompressedImage) []*bmatrix.Matrix[complex128] {
	planes := make([]*bmatrix.Matrix[complex128], len(ci.Channels))
	for i, bc := range ci.Channels {
		planes[i] = DecompressPlane(bc)
	}
	return planes
}
