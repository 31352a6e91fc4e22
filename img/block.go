package img

import (
	"github.com/vargapeter25/BFFT/bmatrix"
	"github.com/vargapeter25/BFFT/compressor"
)

// DefaultBlockSize is the block edge length used when the caller doesn't
// request otherwise.
const DefaultBlockSize = 16

// MinBlockSize and MaxBlockSize bound the accepted -block CLI value.
const (
	MinBlockSize = 8
	MaxBlockSize = 128
)

// CompressedBlock is one independently compressed tile of a channel plane.
// Rows and Cols record the tile's true size, which can be smaller than the
// square block it was extracted into when the tile falls on the bottom or
// right edge of the plane.
type CompressedBlock struct {
	OffsetRow int
	OffsetCol int
	Rows      int
	Cols      int
	Data      compressor.Data2D
}

// BlockedChannel is every block that makes up one compressed channel plane,
// plus the plane's true (un-tiled) dimensions.
type BlockedChannel struct {
	Blocks []CompressedBlock
	Rows   int
	Cols   int
}

type blockSpec struct {
	offsetRow, offsetCol int
	rows, cols           int
}

func blockSpecs(rows, cols, blockSize int) []blockSpec {
	var specs []blockSpec
	for r := 0; r < rows; r += blockSize {
		br := blockSize
		if r+br > rows {
			br = rows - r
		}
		for c := 0; c < cols; c += blockSize {
			bc := blockSize
			if c+bc > cols {
				bc = cols - c
			}
			specs = append(specs, blockSpec{offsetRow: r, offsetCol: c, rows: br, cols: bc})
		}
	}
	return specs
}

// extractBlock pulls a blockSize x blockSize tile out of plane at the given
// offset, zero-filling any part that falls past the plane's edge.
func extractBlock(plane *bmatrix.Matrix[complex128], offsetRow, offsetCol, blockSize int) *bmatrix.Matrix[complex128] {
	return bmatrix.SubmatrixFromPos(plane, offsetRow, offsetCol, blockSize, blockSize)
}
