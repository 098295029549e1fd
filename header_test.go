package qoi2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	desc := Descriptor{Width: 1920, Height: 1080, Channels: 4, Colorspace: ColorspaceLinear}
	var buf []byte
	buf = encodeHeader(buf, desc)
	require.Len(t, buf, HeaderSize)

	got, err := decodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, desc, got)
}

func TestHeaderMagic(t *testing.T) {
	desc := Descriptor{Width: 2, Height: 1, Channels: 3, Colorspace: ColorspaceSRGB}
	var buf []byte
	buf = encodeHeader(buf, desc)
	assert.Equal(t, []byte{0x71, 0x6f, 0x69, 0x32}, buf[:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x02}, buf[4:8])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, buf[8:12])
	assert.Equal(t, byte(3), buf[12])
	assert.Equal(t, byte(0), buf[13])
}

func TestDecodeHeaderRejectsBadMagic(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf, "xoif")
	_, err := decodeHeader(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecodeHeaderRejectsZeroDimensions(t *testing.T) {
	desc := Descriptor{Width: 0, Height: 1, Channels: 3, Colorspace: ColorspaceSRGB}
	var buf []byte
	buf = append(buf, Magic[:]...)
	buf = append(buf, 0, 0, 0, 0, 0, 0, 0, 1, desc.Channels, byte(desc.Colorspace))
	_, err := decodeHeader(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecodeHeaderRejectsBadChannels(t *testing.T) {
	var buf []byte
	buf = append(buf, Magic[:]...)
	buf = append(buf, 0, 0, 0, 1, 0, 0, 0, 1, 5, 0)
	_, err := decodeHeader(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecodeHeaderRejectsBadColorspace(t *testing.T) {
	var buf []byte
	buf = append(buf, Magic[:]...)
	buf = append(buf, 0, 0, 0, 1, 0, 0, 0, 1, 3, 2)
	_, err := decodeHeader(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestDecodeHeaderRejectsPixelCapOverflow(t *testing.T) {
	var buf []byte
	buf = append(buf, Magic[:]...)
	buf = append(buf, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 3, 0) // width 65536, height 65536
	_, err := decodeHeader(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)
}
