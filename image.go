package stegoqr

import (
	"fmt"
	"image"
	"image/color"
)

const darkThreshold = 128

// DecodeImage recovers the secondary text from an image of a QR code.
// The image is scanned for the primary text, the unmodified reference
// is regenerated from it, and the module grid is re-sampled from the
// image pixels for the diff.
func (c *Codec) DecodeImage(img image.Image) (*Result, error) {
	primary, err := c.scanner.ScanImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCodeFound, err)
	}
	ref, err := c.engine.EncodeText(primary, c.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReferenceRegen, err)
	}
	scanned, err := sampleMatrix(img, ref.Size())
	if err != nil {
		return nil, err
	}
	return c.decodeWithReference(scanned, ref, primary)
}

// sampleMatrix locates the code by its dark-pixel bounding box and
// samples one pixel at the center of each module cell. The code must
// fill the box, upright and unrotated, as produced by rendering a
// matrix at a fixed scale.
func sampleMatrix(img image.Image, size int) (*Matrix, error) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !darkAt(img, x, y) {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < minX {
		return nil, fmt.Errorf("%w: image has no dark pixels", ErrNoCodeFound)
	}

	pitchX := float64(maxX-minX+1) / float64(size)
	pitchY := float64(maxY-minY+1) / float64(size)
	rows := make([][]bool, size)
	for y := range rows {
		rows[y] = make([]bool, size)
		py := minY + int((float64(y)+0.5)*pitchY)
		for x := range rows[y] {
			px := minX + int((float64(x)+0.5)*pitchX)
			rows[y][x] = darkAt(img, px, py)
		}
	}
	return NewMatrix(rows)
}

func darkAt(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < darkThreshold
}
