package stegoqr

import (
	"fmt"

	"github.com/yyyoichi/stegoqr/internal/qrgrid"
)

const (
	// BitDensity is the expected flips per embedded bit. Roughly half
	// of the embedded bits are ones, plus framing overhead.
	BitDensity = 0.42

	// DefaultSafetyMargin is the default fraction of flippable modules
	// the encoder may flip.
	DefaultSafetyMargin = 0.07

	// DefaultMaxMessageSize is the default cap on decoded secondary
	// length in bytes.
	DefaultMaxMessageSize = 100
)

// maxBits converts a flippable module count into the number of frame
// bits the safety margin admits.
func maxBits(flippable int, margin float64) int {
	targetFlips := int(float64(flippable) * margin)
	m := int(float64(targetFlips) / BitDensity)
	if m > flippable {
		m = flippable
	}
	return m
}

// Capacity returns the number of secondary bytes that fit alongside
// the given primary text at the configured level and margin.
func (c *Codec) Capacity(primary string) (int, error) {
	base, err := c.engine.EncodeText(primary, c.level)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPrimaryEncode, err)
	}
	return c.capacityOf(base), nil
}

func (c *Codec) capacityOf(m *Matrix) int {
	flippable := len(qrgrid.Flippable(m.Version()))
	return c.frame.MaxPayloadBytes(maxBits(flippable, c.safetyMargin))
}

// CapacityForVersion returns the secondary capacity of a QR version
// in [1, 40] without rendering a code.
func (c *Codec) CapacityForVersion(version int) (int, error) {
	if version < 1 || version > qrgrid.MaxVersion {
		return 0, fmt.Errorf("%w: version %d", ErrInvalidOption, version)
	}
	flippable := len(qrgrid.Flippable(version))
	return c.frame.MaxPayloadBytes(maxBits(flippable, c.safetyMargin)), nil
}

// ValidateCapacity reports whether the secondary text fits alongside
// the primary without encoding anything.
func (c *Codec) ValidateCapacity(primary, secondary string) (bool, error) {
	n, err := c.Capacity(primary)
	if err != nil {
		return false, err
	}
	return len([]byte(secondary)) <= n, nil
}
