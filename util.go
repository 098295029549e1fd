package qoi2

import "image"

// isOpaqueImage reports whether every pixel of im has full alpha, mirroring
// the teacher's classic-QOI helper. EncodeImage uses this to decide
// whether an arbitrary source image.Image should be promoted to a
// 3-channel qoi2 descriptor instead of paying for an alpha channel that
// never varies.
func isOpaqueImage(im image.Image) bool {
	if oim, ok := im.(interface{ Opaque() bool }); ok {
		return oim.Opaque()
	}

	rect := im.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if _, _, _, a := im.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
