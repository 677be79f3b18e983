// Package frame packs a secondary message into the length-prefixed,
// checksummed bit frame carried by the flipped modules, and unpacks
// it again on the decode side.
//
// Frame layout, big-endian bit order within each field:
//
//	offset 0     : 16-bit payload length L in bytes
//	offset 16    : 8·L payload bits, MSB first
//	offset 16+8L : CRC-16/CCITT-FALSE of the payload bytes
//
// An optional Golay(24,12) layer can be applied around the whole
// frame; both sides must agree on its use.
package frame

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/stegoqr/internal/bitconv"
	"github.com/yyyoichi/stegoqr/internal/crc16"
)

// Overhead is the number of frame bits besides the payload.
const Overhead = 32

const lengthBits = 16

var (
	ErrPayloadTooLarge  = errors.New("payload too large for available capacity")
	ErrShortFrame       = errors.New("frame shorter than minimum")
	ErrBadLength        = errors.New("length field exceeds available bits")
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)

type (
	// Option selects the protection layer applied around the frame.
	Option func(*Codec)

	// Codec encodes and decodes frames with a fixed protection
	// choice. The zero value uses no protection.
	Codec struct {
		f factory
	}

	factory interface {
		protect(bits []bool) []bool
		unprotect(bits []bool) []bool
		headerBits() int
		totalBits(dataBits int) int
		maxDataBits(maxBits int) int
	}
)

// WithoutECC leaves the frame bits bare. This is the persisted wire
// format default.
func WithoutECC() Option {
	return func(c *Codec) {
		c.f = plain{}
	}
}

// WithGolay wraps the frame in a Golay(24,12) extended code, halving
// capacity in exchange for tolerance of misread modules. Spatial
// diffusion comes from the carrier's distribution sequence, so no
// shuffle is applied and code blocks stay in order; the decoder can
// still recover the length field from the first two blocks.
func WithGolay() Option {
	return func(c *Codec) {
		c.f = golayECC{}
	}
}

// New returns a Codec with the given options applied.
func New(opts ...Option) Codec {
	var c Codec
	for _, opt := range opts {
		opt(&c)
	}
	if c.f == nil {
		c.f = plain{}
	}
	return c
}

// Encode frames message and returns the stego bits to distribute.
// Fails when the framed (and protected) message needs more than
// maxBits bits.
func (c Codec) Encode(message string, maxBits int) ([]bool, error) {
	b := []byte(message)
	if len(b) > 0xffff {
		return nil, fmt.Errorf("%w: %d bytes exceed the 16-bit length field", ErrPayloadTooLarge, len(b))
	}
	need := c.fac().totalBits(Overhead + 8*len(b))
	if need > maxBits {
		return nil, fmt.Errorf("%w: need %d bits, max %d", ErrPayloadTooLarge, need, maxBits)
	}

	w := bitstream.NewBitWriter[uint64](0, 0)
	w.Write8(0, 8, byte(len(b)>>8))
	w.Write8(0, 8, byte(len(b)))
	for _, v := range b {
		w.Write8(0, 8, v)
	}
	crc := crc16.Checksum(b)
	w.Write8(0, 8, byte(crc>>8))
	w.Write8(0, 8, byte(crc))
	return c.fac().protect(toBools(w.Data(), w.Bits())), nil
}

// Decode unpacks a frame from stego bits. Trailing bits beyond the
// frame end are ignored.
func (c Codec) Decode(bits []bool) (string, error) {
	data := c.fac().unprotect(bits)
	if len(data) < Overhead {
		return "", fmt.Errorf("%w: got %d bits, want at least %d", ErrShortFrame, len(data), Overhead)
	}
	length := int(bitconv.BoolsToUint16(data))
	if Overhead+8*length > len(data) {
		return "", fmt.Errorf("%w: length %d, frame %d bits", ErrBadLength, length, len(data))
	}
	payload := bitconv.BoolsToBytes(data[lengthBits : lengthBits+8*length])
	stored := bitconv.BoolsToUint16(data[lengthBits+8*length:])
	if got := crc16.Checksum(payload); stored != got {
		return "", fmt.Errorf("%w: expected %#04x, got %#04x", ErrChecksumMismatch, stored, got)
	}
	return string(payload), nil
}

// HeaderBits is the number of stego bits the decoder must collect
// before the payload length is known.
func (c Codec) HeaderBits() int {
	return c.fac().headerBits()
}

// Length extracts the payload byte length from the first HeaderBits
// stego bits.
func (c Codec) Length(head []bool) (int, error) {
	hb := c.fac().headerBits()
	if len(head) < hb {
		return 0, fmt.Errorf("%w: got %d header bits, want %d", ErrShortFrame, len(head), hb)
	}
	data := c.fac().unprotect(head[:hb])
	if len(data) < lengthBits {
		return 0, fmt.Errorf("%w: got %d bits after unprotect, want %d", ErrShortFrame, len(data), lengthBits)
	}
	return int(bitconv.BoolsToUint16(data)), nil
}

// TotalBits is the number of stego bits occupied by a frame whose
// payload is payloadLen bytes.
func (c Codec) TotalBits(payloadLen int) int {
	return c.fac().totalBits(Overhead + 8*payloadLen)
}

// MaxPayloadBytes is the largest payload length whose frame fits in
// maxBits stego bits.
func (c Codec) MaxPayloadBytes(maxBits int) int {
	d := c.fac().maxDataBits(maxBits)
	if d < Overhead {
		return 0
	}
	n := (d - Overhead) / 8
	if n > 0xffff {
		n = 0xffff
	}
	return n
}

func (c Codec) fac() factory {
	if c.f == nil {
		return plain{}
	}
	return c.f
}

func toBools(data []uint64, n int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	out := make([]bool, n)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}

func toWords(bits []bool) []uint64 {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return w.Data()
}
