package img

import (
	"fmt"

	"github.com/vargapeter25/BFFT/compressor"
	"github.com/vargapeter25/BFFT/internal/container"
	"github.com/vargapeter25/BFFT/transform"
)

// Encode serializes a CompressedImage into the binary container format:
// little-endian, length-prefixed, no magic number or version byte. Field
// order is fixed and must match Decode exactly.
func Encode(ci CompressedImage) []byte {
	w := container.NewWriter()
	w.WriteUint64(uint64(len(ci.Channels)))
	for _, ch := range ci.Channels {
		encodeChannel(w, ch)
	}
	return w.Bytes()
}

func encodeChannel(w *container.Writer, bc BlockedChannel) {
	w.WriteUint64(uint64(len(bc.Blocks)))
	for _, block := range bc.Blocks {
		encodeBlock(w, block)
	}
	w.WriteUint64(uint64(bc.Rows))
	w.WriteUint64(uint64(bc.Cols))
}

func encodeBlock(w *container.Writer, block CompressedBlock) {
	w.WriteUint64(uint64(block.OffsetRow))
	w.WriteUint64(uint64(block.OffsetCol))
	w.WriteUint64(uint64(block.Rows))
	w.WriteUint64(uint64(block.Cols))
	encodeData2D(w, block.Data)
}

func encodeData2D(w *container.Writer, d compressor.Data2D) {
	w.WriteUint64(uint64(len(d.Coeffs)))
	for _, coef := range d.Coeffs {
		w.WriteUint64(uint64(coef.IDRow))
		w.WriteUint64(uint64(coef.IDCol))
		w.WriteComplex128(coef.Value)
	}

	encodeParamList(w, d.RowParams)
	encodeParamList(w, d.ColParams)

	w.WriteUint64(uint64(d.TransformedRows))
	w.WriteUint64(uint64(d.TransformedCols))
	w.WriteUint64(uint64(d.ResultRows))
	w.WriteUint64(uint64(d.ResultCols))
	w.WriteInt32(int32(d.ResizeMode))
}

func encodeParamList(w *container.Writer, lists [][]complex128) {
	w.WriteUint64(uint64(len(lists)))
	for _, params := range lists {
		w.WriteUint64(uint64(len(params)))
		for _, p := range params {
			w.WriteComplex128(p)
		}
	}
}

// Decode parses the binary container format produced by Encode.
func Decode(buf []byte) (CompressedImage, error) {
	r := container.NewReader(buf)

	numChannels, err := r.ReadUint64()
	if err != nil {
		return CompressedImage{}, fmt.Errorf("img: reading channel count: %w", err)
	}

	channels := make([]BlockedChannel, numChannels)
	for i := range channels {
		ch, err := decodeChannel(r)
		if err != nil {
			return CompressedImage{}, fmt.Errorf("img: channel %d: %w", i, err)
		}
		channels[i] = ch
	}

	return CompressedImage{Channels: channels}, nil
}

func decodeChannel(r *container.Reader) (BlockedChannel, error) {
	numBlocks, err := r.ReadUint64()
	if err != nil {
		return BlockedChannel{}, err
	}

	blocks := make([]CompressedBlock, numBlocks)
	for i := range blocks {
		b, err := decodeBlock(r)
		if err != nil {
			return BlockedChannel{}, fmt.Errorf("block %d: %w", i, err)
		}
		blocks[i] = b
	}

	rows, err := r.ReadUint64()
	if err != nil {
		return BlockedChannel{}, err
	}
	cols, err := r.ReadUint64()
	if err != nil {
		return BlockedChannel{}, err
	}

	return BlockedChannel{Blocks: blocks, Rows: int(rows), Cols: int(cols)}, nil
}

func decodeBlock(r *container.Reader) (CompressedBlock, error) {
	offsetRow, err := r.ReadUint64()
	if err != nil {
		return CompressedBlock{}, err
	}
	offsetCol, err := r.ReadUint64()
	if err != nil {
		return CompressedBlock{}, err
	}
	rows, err := r.ReadUint64()
	if err != nil {
		return CompressedBlock{}, err
	}
	cols, err := r.ReadUint64()
	if err != nil {
		return CompressedBlock{}, err
	}
	data, err := decodeData2D(r)
	if err != nil {
		return CompressedBlock{}, err
	}

	return CompressedBlock{
		OffsetRow: int(offsetRow),
		OffsetCol: int(offsetCol),
		Rows:      int(rows),
		Cols:      int(cols),
		Data:      data,
	}, nil
}

func decodeData2D(r *container.Reader) (compressor.Data2D, error) {
	numCoeffs, err := r.ReadUint64()
	if err != nil {
		return compressor.Data2D{}, err
	}
	coeffs := make([]compressor.Coefficient2D, numCoeffs)
	for i := range coeffs {
		idRow, err := r.ReadUint64()
		if err != nil {
			return compressor.Data2D{}, err
		}
		idCol, err := r.ReadUint64()
		if err != nil {
			return compressor.Data2D{}, err
		}
		value, err := r.ReadComplex128()
		if err != nil {
			return compressor.Data2D{}, err
		}
		coeffs[i] = compressor.Coefficient2D{IDRow: int(idRow), IDCol: int(idCol), Value: value}
	}

	rowParams, err := decodeParamList(r)
	if err != nil {
		return compressor.Data2D{}, err
	}
	colParams, err := decodeParamList(r)
	if err != nil {
		return compressor.Data2D{}, err
	}

	transformedRows, err := r.ReadUint64()
	if err != nil {
		return compressor.Data2D{}, err
	}
	transformedCols, err := r.ReadUint64()
	if err != nil {
		return compressor.Data2D{}, err
	}
	resultRows, err := r.ReadUint64()
	if err != nil {
		return compressor.Data2D{}, err
	}
	resultCols, err := r.ReadUint64()
	if err != nil {
		return compressor.Data2D{}, err
	}
	resizeMode, err := r.ReadInt32()
	if err != nil {
		return compressor.Data2D{}, err
	}

	return compressor.Data2D{
		Coeffs:          coeffs,
		RowParams:       rowParams,
		ColParams:       colParams,
		TransformedRows: int(transformedRows),
		TransformedCols: int(transformedCols),
		ResultRows:      int(resultRows),
		ResultCols:      int(resultCols),
		ResizeMode:      transform.Mode(resizeMode),
	}, nil
}

func decodeParamList(r *container.Reader) ([][]complex128, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	lists := make([][]complex128, n)
	for i := range lists {
		m, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		params := make([]complex128, m)
		for j := range params {
			p, err := r.ReadComplex128()
			if err != nil {
				return nil, err
			}
			params[j] = p
		}
		lists[i] = params
	}
	return lists, nil
}
