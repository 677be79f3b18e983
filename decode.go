package stegoqr

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/stegoqr/frame"
	"github.com/yyyoichi/stegoqr/internal/distribute"
	"github.com/yyyoichi/stegoqr/internal/qrgrid"
)

// Result holds the outcome of a decode.
type Result struct {
	Primary   string
	Secondary string
	Metadata  *Metadata
}

// DecodeMatrix recovers the secondary text from scanned module values,
// given the primary text the code carries. The primary is needed to
// regenerate the unmodified reference matrix.
func (c *Codec) DecodeMatrix(modules [][]bool, primary string) (*Result, error) {
	scanned, err := NewMatrix(modules)
	if err != nil {
		return nil, err
	}
	return c.decode(scanned, primary)
}

func (c *Codec) decode(scanned *Matrix, primary string) (*Result, error) {
	ref, err := c.engine.EncodeText(primary, c.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReferenceRegen, err)
	}
	return c.decodeWithReference(scanned, ref, primary)
}

func (c *Codec) decodeWithReference(scanned, ref *Matrix, primary string) (*Result, error) {
	if ref.Size() != scanned.Size() {
		return nil, fmt.Errorf("%w: scanned %d, reference %d", ErrSizeMismatch, scanned.Size(), ref.Size())
	}

	positions := qrgrid.Flippable(ref.Version())
	total := len(positions)
	flipped := make([]bool, total)
	var count int
	for i, pos := range positions {
		if scanned.At(pos.X, pos.Y) != ref.At(pos.X, pos.Y) {
			flipped[i] = true
			count++
		}
	}
	m := maxBits(total, c.safetyMargin)
	if count == 0 {
		return &Result{Primary: primary, Metadata: c.metadata(0, 0, 0, m)}, nil
	}

	// Read the length header first so only the bits a frame of that
	// length occupies are interpreted.
	head, err := gather(flipped, c.frame.HeaderBits(), total)
	if err != nil {
		return nil, err
	}
	length, err := c.frame.Length(head)
	if err != nil {
		return nil, err
	}
	if length > c.maxMessageSize {
		return nil, fmt.Errorf("%w: length %d exceeds limit %d", ErrBadLength, length, c.maxMessageSize)
	}
	need := c.frame.TotalBits(length)
	if need > total {
		return nil, fmt.Errorf("%w: frame of %d bits in %d modules", ErrBadLength, need, total)
	}
	bits, err := gather(flipped, need, total)
	if err != nil {
		return nil, err
	}

	secondary, err := c.frame.Decode(bits)
	if err != nil {
		if c.strictChecksum || !errors.Is(err, frame.ErrChecksumMismatch) {
			return nil, err
		}
		secondary = ""
	}
	return &Result{
		Primary:   primary,
		Secondary: secondary,
		Metadata:  c.metadata(count, 0, need, m),
	}, nil
}

// gather reads the first n distributed frame bits out of the flip map.
func gather(flipped []bool, n, total int) ([]bool, error) {
	seq, err := distribute.Sequence(n, total)
	if err != nil {
		return nil, fmt.Errorf("%w: frame of %d bits in %d modules", ErrBadLength, n, total)
	}
	bits := make([]bool, n)
	for i, idx := range seq {
		bits[i] = flipped[idx]
	}
	return bits, nil
}
