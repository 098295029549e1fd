package qoi2

import (
	"image"
	"image/color"
	"image/draw"
	"io"
)

// Image is a decoded qoi2 image: a flat row-major pixel buffer plus the
// descriptor it was decoded (or will be encoded) with. It implements
// image.Image so a decoded qoi2 stream composes with the rest of the
// standard image toolchain, the same role the teacher's Image type plays
// for classic QOI.
type Image struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace Colorspace
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	off := (y*img.Width + x) * int(img.Channels)
	if img.Channels == 4 {
		return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: img.Pix[off+3]}
	}
	return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: 255}
}

// qoiMagicString is the image.RegisterFormat magic used for sniffing/auto
// detection via image.Decode.
const qoiMagicString = "qoi2"

func init() {
	image.RegisterFormat("qoi2", qoiMagicString, DecodeImage, DecodeConfig)
}

// EncodeImage writes m to w in qoi2 format. Any image.Image may be passed;
// images that are not already *Image are converted through image.NRGBA
// first, the same way the teacher's classic-QOI encoder normalizes an
// arbitrary source image before running the chunk cascade.
func EncodeImage(w io.Writer, m image.Image) error {
	img, ok := m.(*Image)
	if !ok {
		img = nrgbaToImage(toNRGBA(m), isOpaqueImage(m))
	}
	data, err := Encode(img.Pix, Descriptor{
		Width:      uint32(img.Width),
		Height:     uint32(img.Height),
		Channels:   img.Channels,
		Colorspace: img.Colorspace,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// DecodeImage reads a complete qoi2 stream from r and returns it as an
// image.Image with alpha always present (classic QOI's Decode behaves the
// same way toward callers expecting image.Image).
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	pix, desc, err := Decode(data, 4)
	if err != nil {
		return nil, err
	}
	return &Image{
		Pix:        pix,
		Width:      int(desc.Width),
		Height:     int(desc.Height),
		Channels:   4,
		Colorspace: desc.Colorspace,
	}, nil
}

// DecodeConfig reads just enough of r to report the image dimensions
// without decoding the chunk stream.
func DecodeConfig(r io.Reader) (image.Config, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return image.Config{}, err
	}
	desc, err := decodeHeader(header)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      int(desc.Width),
		Height:     int(desc.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func nrgbaToImage(m *image.NRGBA, opaque bool) *Image {
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	channels := uint8(4)
	if opaque {
		channels = 3
	}
	pix := make([]byte, 0, w*h*int(channels))
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w*4]
		for x := 0; x < w; x++ {
			off := x * 4
			pix = append(pix, row[off], row[off+1], row[off+2])
			if channels == 4 {
				pix = append(pix, row[off+3])
			}
		}
	}
	return &Image{Pix: pix, Width: w, Height: h, Channels: channels, Colorspace: ColorspaceSRGB}
}
