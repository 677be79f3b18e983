package stegoqr

import (
	"fmt"

	"github.com/yyyoichi/stegoqr/frame"
	"github.com/yyyoichi/stegoqr/internal/distribute"
	"github.com/yyyoichi/stegoqr/internal/qrgrid"
)

// Encode renders the primary text as a QR code and embeds the
// secondary text into its flippable modules. The returned matrix
// still scans as the primary text. Metadata is nil when the codec was
// built with WithoutMetadata.
func (c *Codec) Encode(primary, secondary string) (*Matrix, *Metadata, error) {
	base, err := c.engine.EncodeText(primary, c.level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPrimaryEncode, err)
	}
	positions := qrgrid.Flippable(base.Version())
	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("%w: version %d", ErrMatrixTooSmall, base.Version())
	}
	m := maxBits(len(positions), c.safetyMargin)
	if m <= frame.Overhead {
		return nil, nil, fmt.Errorf("%w: %d frame bits available", ErrInsufficientCapacity, m)
	}
	if secondary == "" {
		return base, c.metadata(0, 0, 0, m), nil
	}

	bits, err := c.frame.Encode(secondary, m)
	if err != nil {
		return nil, nil, err
	}
	seq, err := distribute.Sequence(len(bits), len(positions))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}

	out := base.Clone()
	var flipped, skipped int
	for i, bit := range bits {
		if !bit {
			continue
		}
		pos := positions[seq[i]]
		if qrgrid.Classify(pos.X, pos.Y, out.Size(), out.Version()).IsFunction() {
			skipped++
			continue
		}
		out.flip(pos.X, pos.Y)
		flipped++
	}
	return out, c.metadata(flipped, skipped, len(bits), m), nil
}

func (c *Codec) metadata(flipped, skipped, usedBits, maxBits int) *Metadata {
	if !c.includeMetadata {
		return nil
	}
	var pct float64
	if maxBits > 0 {
		pct = float64(usedBits) / float64(maxBits) * 100
	}
	return &Metadata{
		Version:         MetadataVersion,
		Timestamp:       c.now(),
		FlippedCount:    flipped,
		ECLevelUsed:     c.level,
		CapacityUsedPct: pct,
		SkippedFlips:    skipped,
	}
}
