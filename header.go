package qoi2

import "encoding/binary"

// Magic identifies a qoi2 stream: ASCII "qoi2".
var Magic = [4]byte{'q', 'o', 'i', '2'}

// HeaderSize is the fixed size, in bytes, of the header that precedes the
// chunk stream.
const HeaderSize = 14

// MaxPixels bounds width*height to guard against arithmetic overflow
// downstream; images larger than this are out of scope (spec.md §1).
const MaxPixels = 350_000_000

// Colorspace is informative only; it is never consulted by the codec.
type Colorspace uint8

const (
	// ColorspaceSRGB marks sRGB color channels with linear alpha.
	ColorspaceSRGB Colorspace = 0
	// ColorspaceLinear marks all channels as linear.
	ColorspaceLinear Colorspace = 1
)

// Descriptor is the decoded form of the 14-byte header: the qoi_desc of
// the original format, carried verbatim by this adaptation.
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace Colorspace
}

// Validate checks the descriptor invariants from spec.md §3/§4.1 without
// touching a byte stream: non-zero dimensions, channels in {3,4},
// colorspace in {0,1}, and width*height within MaxPixels.
func (d Descriptor) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return newError(KindInvalidHeader, "width and height must be non-zero")
	}
	if d.Channels != 3 && d.Channels != 4 {
		return newError(KindInvalidHeader, "channels must be 3 or 4")
	}
	if d.Colorspace != ColorspaceSRGB && d.Colorspace != ColorspaceLinear {
		return newError(KindInvalidHeader, "colorspace must be 0 or 1")
	}
	if d.Height > MaxPixels/d.Width {
		return newError(KindInvalidHeader, "width*height exceeds the pixel cap")
	}
	return nil
}

// encodeHeader appends the 14-byte header for d to dst and returns the
// extended slice.
func encodeHeader(dst []byte, d Descriptor) []byte {
	dst = append(dst, Magic[:]...)
	dst = binary.BigEndian.AppendUint32(dst, d.Width)
	dst = binary.BigEndian.AppendUint32(dst, d.Height)
	dst = append(dst, d.Channels, uint8(d.Colorspace))
	return dst
}

// decodeHeader parses the first HeaderSize bytes of data into a Descriptor.
// The caller must already have checked len(data) >= HeaderSize.
func decodeHeader(data []byte) (Descriptor, error) {
	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return Descriptor{}, newError(KindInvalidHeader, "magic mismatch")
	}
	d := Descriptor{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: Colorspace(data[13]),
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}
