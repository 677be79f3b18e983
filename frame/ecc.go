package frame

import "github.com/yyyoichi/golay"

var _ factory = (*plain)(nil)

type plain struct{}

func (plain) protect(bits []bool) []bool   { return bits }
func (plain) unprotect(bits []bool) []bool { return bits }
func (plain) headerBits() int              { return lengthBits }
func (plain) totalBits(dataBits int) int   { return dataBits }
func (plain) maxDataBits(maxBits int) int  { return maxBits }

var _ factory = (*golayECC)(nil)

type golayECC struct{}

func (golayECC) protect(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	// zero-pad to whole 12-bit blocks; Decode ignores the trailing bits
	padded := make([]bool, blockBits(len(bits)))
	copy(padded, bits)
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(toWords(padded), len(padded))
	return toBools(encoded, enc.Bits())
}

func (golayECC) unprotect(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	var decoded []uint64
	dec := golay.NewDecoder(toWords(bits), len(bits))
	_ = dec.Decode(&decoded)
	// each 24-bit block carries 12 data bits
	return toBools(decoded, len(bits)/24*12)
}

func (golayECC) headerBits() int {
	return golay.EncodedBits(blockBits(lengthBits))
}

func (golayECC) totalBits(dataBits int) int {
	return golay.EncodedBits(blockBits(dataBits))
}

// blockBits rounds n up to whole 12-bit Golay data blocks.
func blockBits(n int) int {
	return (n + 11) / 12 * 12
}

func (golayECC) maxDataBits(maxBits int) int {
	return maxBits / 24 * 12
}
