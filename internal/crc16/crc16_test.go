package crc16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	test := []struct {
		name string
		data []byte
		exp  uint16
	}{
		{"empty", nil, 0xffff},
		{"empty slice", []byte{}, 0xffff},
		{"check value", []byte("123456789"), 0x29b1},
		{"single zero", []byte{0x00}, 0xe1f0},
		{"ascii A", []byte("A"), 0xb915},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Checksum(tt.data))
		})
	}
}

func TestChecksumStable(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	first := Checksum(data)
	for range 10 {
		assert.Equal(t, first, Checksum(data))
	}
	assert.NotEqual(t, first, Checksum([]byte{1, 2, 3, 4, 6}))
}
