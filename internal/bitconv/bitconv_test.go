package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		data []byte
		exp  []byte
	}{
		{data: []byte{0b10101010}, exp: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}, exp: []byte{0b11110000, 0b00001111}},
		{data: []byte("Hello"), exp: []byte("Hello")},
		{data: []byte("こんにちは"), exp: []byte("こんにちは")},
		{data: []byte("🍣"), exp: []byte("🍣")},
		{data: []byte{}, exp: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBools(tt.data)
		out := BoolsToBytes(bits)
		assert.Equal(t, tt.exp, out)
	}
}

func TestBitOrder(t *testing.T) {
	bits := BytesToBools([]byte{0b10000001})
	assert.True(t, bits[0])
	assert.False(t, bits[1])
	assert.True(t, bits[7])
}

func TestUint16Conv(t *testing.T) {
	test := []uint16{0, 1, 0x8000, 0xffff, 0x1021, 12345}
	for _, v := range test {
		bits := Uint16ToBools(v)
		assert.Len(t, bits, 16)
		assert.Equal(t, v, BoolsToUint16(bits))
	}
	bits := Uint16ToBools(0x8001)
	assert.True(t, bits[0])
	assert.True(t, bits[15])
	assert.False(t, bits[1])
}
