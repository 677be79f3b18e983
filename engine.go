package stegoqr

import (
	"fmt"
	"image"

	"github.com/liyue201/goqr"
	"rsc.io/qr"
)

// Level is a QR error correction level. Higher levels leave more
// correction slack for module flips.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Engine renders text into a QR module matrix. Implementations must be
// deterministic. The same text and level always yield the same matrix;
// the decoder relies on regenerating an identical reference.
type Engine interface {
	EncodeText(text string, level Level) (*Matrix, error)
}

// Scanner extracts the primary text from an image of a QR code.
type Scanner interface {
	ScanImage(img image.Image) (string, error)
}

var _ Engine = rscEngine{}

type rscEngine struct{}

func (rscEngine) EncodeText(text string, level Level) (*Matrix, error) {
	code, err := qr.Encode(text, qr.Level(level))
	if err != nil {
		return nil, err
	}
	size := code.Size
	m := newMatrix(size, (size-17)/4, level)
	for y := range size {
		for x := range size {
			if code.Black(x, y) {
				m.set(x, y, true)
			}
		}
	}
	return m, nil
}

var _ Scanner = goqrScanner{}

type goqrScanner struct{}

func (goqrScanner) ScanImage(img image.Image) (string, error) {
	codes, err := goqr.Recognize(img)
	if err != nil {
		return "", err
	}
	if len(codes) == 0 {
		return "", fmt.Errorf("no recognizable code")
	}
	return string(codes[0].Payload), nil
}
