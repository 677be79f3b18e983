package stegoqr

import (
	"fmt"

	"github.com/yyyoichi/stegoqr/frame"
)

// Option configures a Codec.
type Option func(*Codec) error

// WithECLevel sets the error correction level the primary text is
// encoded at. Lower levels shrink the code but leave less slack for
// embedded bits. Decode regenerates the reference at this same level
// rather than reading it from the scanned format bits, so encode and
// decode must use the same level. Default is H.
func WithECLevel(level Level) Option {
	return func(c *Codec) error {
		if level < L || level > H {
			return fmt.Errorf("%w: ec level %d", ErrInvalidOption, int(level))
		}
		c.level = level
		return nil
	}
}

// WithSafetyMargin sets the fraction of flippable modules the encoder
// may flip, in (0, 1]. Raising it grows capacity at the cost of scan
// robustness. Default is 0.07.
func WithSafetyMargin(margin float64) Option {
	return func(c *Codec) error {
		if margin <= 0 || margin > 1 {
			return fmt.Errorf("%w: safety margin %v", ErrInvalidOption, margin)
		}
		c.safetyMargin = margin
		return nil
	}
}

// WithoutMetadata suppresses the Metadata record on encode and decode
// results.
func WithoutMetadata() Option {
	return func(c *Codec) error {
		c.includeMetadata = false
		return nil
	}
}

// WithLenientChecksum makes decode return an empty secondary instead
// of an error when the payload checksum does not match.
func WithLenientChecksum() Option {
	return func(c *Codec) error {
		c.strictChecksum = false
		return nil
	}
}

// WithMaxMessageSize caps the secondary length, in bytes, that decode
// will accept from a length header. Default is 100.
func WithMaxMessageSize(n int) Option {
	return func(c *Codec) error {
		if n <= 0 {
			return fmt.Errorf("%w: max message size %d", ErrInvalidOption, n)
		}
		c.maxMessageSize = n
		return nil
	}
}

// WithGolayProtection wraps the embedded frame in Golay(24,12) code
// blocks, correcting up to three bit errors per block at the cost of
// halving capacity.
func WithGolayProtection() Option {
	return func(c *Codec) error {
		c.frame = frame.New(frame.WithGolay())
		return nil
	}
}

// WithEngine replaces the QR rendering engine. Encode and decode of
// the same code must use the same engine.
func WithEngine(e Engine) Option {
	return func(c *Codec) error {
		if e == nil {
			return fmt.Errorf("%w: nil engine", ErrInvalidOption)
		}
		c.engine = e
		return nil
	}
}

// WithScanner replaces the image scanner used by DecodeImage.
func WithScanner(s Scanner) Option {
	return func(c *Codec) error {
		if s == nil {
			return fmt.Errorf("%w: nil scanner", ErrInvalidOption)
		}
		c.scanner = s
		return nil
	}
}
