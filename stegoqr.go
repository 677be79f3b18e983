// Package stegoqr embeds a hidden secondary text inside an ordinary
// QR code. The code is generated from a public primary text at a high
// error correction level, then a small fraction of its data modules
// is flipped to carry a framed secondary payload. Standard readers
// still decode the primary; this package recovers the secondary by
// regenerating the unmodified code and diffing module by module.
package stegoqr

import (
	"image"
	"time"

	"github.com/yyyoichi/stegoqr/frame"
)

// Codec encodes and decodes steganographic QR codes. The zero value
// is not usable; use New.
type Codec struct {
	engine          Engine
	scanner         Scanner
	level           Level
	safetyMargin    float64
	includeMetadata bool
	strictChecksum  bool
	maxMessageSize  int
	frame           frame.Codec

	now func() time.Time
}

// New returns a Codec with the given options applied over defaults.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		engine:          rscEngine{},
		scanner:         goqrScanner{},
		level:           H,
		safetyMargin:    DefaultSafetyMargin,
		includeMetadata: true,
		strictChecksum:  true,
		maxMessageSize:  DefaultMaxMessageSize,
		frame:           frame.New(),
		now:             time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Encode embeds the secondary text into a QR code of the primary text
// using a codec built from the given options.
func Encode(primary, secondary string, opts ...Option) (*Matrix, *Metadata, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return c.Encode(primary, secondary)
}

// DecodeMatrix recovers the secondary text from scanned module values
// using a codec built from the given options.
func DecodeMatrix(modules [][]bool, primary string, opts ...Option) (*Result, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.DecodeMatrix(modules, primary)
}

// DecodeImage recovers the secondary text from an image of a QR code
// using a codec built from the given options.
func DecodeImage(img image.Image, opts ...Option) (*Result, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.DecodeImage(img)
}

// Capacity returns the secondary capacity alongside the primary text
// using a codec built from the given options.
func Capacity(primary string, opts ...Option) (int, error) {
	c, err := New(opts...)
	if err != nil {
		return 0, err
	}
	return c.Capacity(primary)
}

// ValidateCapacity reports whether the secondary fits alongside the
// primary using a codec built from the given options.
func ValidateCapacity(primary, secondary string, opts ...Option) (bool, error) {
	c, err := New(opts...)
	if err != nil {
		return false, err
	}
	return c.ValidateCapacity(primary, secondary)
}
