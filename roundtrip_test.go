package qoi2

import (
	"testing"

	testdataloader "github.com/peteole/testdata-loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, pixels []byte, desc Descriptor) []byte {
	t.Helper()
	out, err := Encode(pixels, desc)
	require.NoError(t, err)
	decoded, gotDesc, err := Decode(out, int(desc.Channels))
	require.NoError(t, err)
	assert.Equal(t, desc, gotDesc)
	assert.Equal(t, pixels, decoded)
	return out
}

func TestRoundTripFixtures(t *testing.T) {
	cases := []struct {
		name string
		file string
		desc Descriptor
	}{
		{"gradient-rgb", "testdata/gradient_rgb_4x1.bin", Descriptor{Width: 4, Height: 1, Channels: 3, Colorspace: ColorspaceSRGB}},
		{"transparent-rgba", "testdata/transparent_rgba_2x1.bin", Descriptor{Width: 2, Height: 1, Channels: 4, Colorspace: ColorspaceSRGB}},
		{"checkerboard-rgb", "testdata/checkerboard_rgb_2x2.bin", Descriptor{Width: 2, Height: 2, Channels: 3, Colorspace: ColorspaceLinear}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pixels := testdataloader.GetTestFile(c.file)
			roundTrip(t, pixels, c.desc)
		})
	}
}

func TestRoundTripRandomImage(t *testing.T) {
	const w, h = 256, 256
	for _, channels := range []uint8{3, 4} {
		for _, cs := range []Colorspace{ColorspaceSRGB, ColorspaceLinear} {
			desc := Descriptor{Width: w, Height: h, Channels: channels, Colorspace: cs}
			pixels := make([]byte, w*h*int(channels))
			seed := uint32(0xC0FFEE) + uint32(channels)<<8 + uint32(cs)
			for i := range pixels {
				seed = seed*1664525 + 1013904223
				pixels[i] = byte(seed >> 24)
			}
			roundTrip(t, pixels, desc)
		}
	}
}

func TestAlphaTransparencyFor3ChannelInput(t *testing.T) {
	desc := Descriptor{Width: 2, Height: 1, Channels: 3, Colorspace: ColorspaceSRGB}
	pixels := []byte{10, 20, 30, 40, 50, 60}

	out, err := Encode(pixels, desc)
	require.NoError(t, err)

	decoded, _, err := Decode(out, 4)
	require.NoError(t, err)

	require.Len(t, decoded, 8)
	assert.Equal(t, byte(255), decoded[3])
	assert.Equal(t, byte(255), decoded[7])
	assert.Equal(t, []byte{10, 20, 30}, decoded[0:3])
	assert.Equal(t, []byte{40, 50, 60}, decoded[4:7])
}

func TestDecodeDerivesChannelsFromHeaderWhenUnspecified(t *testing.T) {
	desc := Descriptor{Width: 2, Height: 1, Channels: 4, Colorspace: ColorspaceSRGB}
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := Encode(pixels, desc)
	require.NoError(t, err)

	decoded, gotDesc, err := Decode(out, 0)
	require.NoError(t, err)
	assert.Equal(t, desc, gotDesc)
	assert.Equal(t, pixels, decoded)
}
