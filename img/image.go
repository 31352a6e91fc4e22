package img

import (
	"image"
	"image/color"

	"github.com/vargapeter25/BFFT/bmatrix"
)

// bias is subtracted from each 8-bit channel sample before transforming
// (and added back after reconstruction) so the signal is centered on zero,
// matching the reference codec's convention.
const bias = 128.0

// NativeChannels picks a channel count from im's color model: 1 for the
// Gray and Gray16 models, 4 for the RGBA, NRGBA, RGBA64 and NRGBA64 models
// (whether or not the pixels use alpha), 3 (RGB) for every other model. It
// never returns 2.
func NativeChannels(im image.Image) int {
	switch im.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model:
		return 4
	default:
		return 3
	}
}

// Planes splits im into numChannels complex128 matrices, with each byte
// value shifted by -bias and placed in the real part. numChannels selects
// the layout: 1 = gray, 2 = gray+alpha, 3 = RGB, 4 = RGBA.
func Planes(im image.Image, numChannels int) []*bmatrix.Matrix[complex128] {
	b := im.Bounds()
	rows, cols := b.Dy(), b.Dx()

	planes := make([]*bmatrix.Matrix[complex128], numChannels)
	for i := range planes {
		planes[i] = bmatrix.New[complex128](rows, cols)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := im.At(x, y).RGBA()
			row, col := y-b.Min.Y, x-b.Min.X
			switch numChannels {
			case 1:
				planes[0].Set(row, col, complex(gray(r, g, bl)-bias, 0))
			case 2:
				planes[0].Set(row, col, complex(gray(r, g, bl)-bias, 0))
				planes[1].Set(row, col, complex(float64(a>>8)-bias, 0))
			case 3:
				planes[0].Set(row, col, complex(float64(r>>8)-bias, 0))
				planes[1].Set(row, col, complex(float64(g>>8)-bias, 0))
				planes[2].Set(row, col, complex(float64(bl>>8)-bias, 0))
			case 4:
				planes[0].Set(row, col, complex(float64(r>>8)-bias, 0))
				planes[1].Set(row, col, complex(float64(g>>8)-bias, 0))
				planes[2].Set(row, col, complex(float64(bl>>8)-bias, 0))
				planes[3].Set(row, col, complex(float64(a>>8)-bias, 0))
			}
		}
	}
	return planes
}

func gray(r, g, b uint32) float64 {
	return (float64(r>>8) + float64(g>>8) + float64(b>>8)) / 3
}

// Recompose rebuilds an RGBA image from len(planes) channel planes (1, 2, 3
// or 4, in the same layout Planes produces), adding bias back and clamping
// each sample to [0, 255].
func Recompose(planes []*bmatrix.Matrix[complex128]) *image.RGBA {
	rows, cols := planes[0].Rows(), planes[0].Cols()
	out := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.SetRGBA(c, r, recomposePixel(planes, r, c))
		}
	}
	return out
}

func recomposePixel(planes []*bmatrix.Matrix[complex128], r, c int) color.RGBA {
	switch len(planes) {
	case 1:
		v := clampByte(real(planes[0].At(r, c)) + bias)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case 2:
		v := clampByte(real(planes[0].At(r, c)) + bias)
		a := clampByte(real(planes[1].At(r, c)) + bias)
		return color.RGBA{R: v, G: v, B: v, A: a}
	case 3:
		return color.RGBA{
			R: clampByte(real(planes[0].At(r, c)) + bias),
			G: clampByte(real(planes[1].At(r, c)) + bias),
			B: clampByte(real(planes[2].At(r, c)) + bias),
			A: 255,
		}
	default:
		return color.RGBA{
			R: clampByte(real(planes[0].At(r, c)) + bias),
			G: clampByte(real(planes[1].At(r, c)) + bias),
			B: clampByte(real(planes[2].At(r, c)) + bias),
			A: clampByte(real(planes[3].At(r, c)) + bias),
		}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
