package qoi2

// Encode walks pixels once and produces a complete qoi2 stream: header,
// chunk region, four-byte 0xff padding/terminator. pixels must be laid out
// row-major, left-to-right, top-to-bottom, r,g,b[,a] per pixel, with
// length exactly width*height*channels.
func Encode(pixels []byte, desc Descriptor) ([]byte, error) {
	if pixels == nil {
		return nil, newError(KindInvalidArgument, "nil pixel buffer")
	}
	if err := validateEncodeDescriptor(desc); err != nil {
		return nil, err
	}
	channels := int(desc.Channels)
	totalPixels := int(desc.Width) * int(desc.Height)
	if len(pixels) != totalPixels*channels {
		return nil, newError(KindInvalidArgument, "pixel buffer length does not match width*height*channels")
	}

	out := make([]byte, 0, UpperBound(desc))
	out = encodeHeader(out, desc)

	var idx indexRing
	var htab hashTable
	prev := sentinelPixel
	run := 0

	for i := 0; i < totalPixels; i++ {
		off := i * channels
		px := pixel{r: pixels[off], g: pixels[off+1], b: pixels[off+2], a: 255}
		if channels == 4 {
			px.a = pixels[off+3]
		}

		if px.equals(prev) {
			run++
			if run == maxRun || i == totalPixels-1 {
				out = flushRunForced(out, run)
				run = 0
			}
			continue
		}

		if run > 0 {
			out = flushRun(out, run)
			run = 0
		}

		if slot, hit := htab.lookup(&idx, px); hit {
			out = append(out, tagINDEX|slot)
			prev = px
			continue
		}

		slot := idx.pos
		htab.record(px, slot)
		idx.insert(px)
		if px.a != prev.a {
			out = append(out, tagA, px.a)
		}
		out = appendChunk(out, px, prev)
		prev = px
	}

	out = append(out, 0xff, 0xff, 0xff, 0xff)
	return out, nil
}

// UpperBound returns the largest number of bytes Encode can produce for an
// image matching desc: header plus padding plus the worst case where every
// pixel costs QOI_OP_A + QOI_OP_RGB (6 bytes, 4-channel input) or
// QOI_OP_RGB alone (4 bytes, 3-channel input).
func UpperBound(desc Descriptor) int {
	perPixel := 6
	if desc.Channels == 3 {
		perPixel = 4
	}
	return HeaderSize + 4 + int(desc.Width)*int(desc.Height)*perPixel
}

func validateEncodeDescriptor(desc Descriptor) error {
	if desc.Width == 0 || desc.Height == 0 {
		return newError(KindInvalidArgument, "width and height must be non-zero")
	}
	if desc.Channels != 3 && desc.Channels != 4 {
		return newError(KindInvalidArgument, "channels must be 3 or 4")
	}
	if desc.Colorspace != ColorspaceSRGB && desc.Colorspace != ColorspaceLinear {
		return newError(KindInvalidArgument, "colorspace must be 0 or 1")
	}
	if desc.Height > MaxPixels/desc.Width {
		return newError(KindInvalidArgument, "width*height exceeds the pixel cap")
	}
	return nil
}

// flushRun appends QOI_OP_RUN (runs of 1..8) or QOI_OP_RUN2 (runs of
// 9..1024) for a run ended by a pixel transition (spec.md §4.2 step 2a).
func flushRun(out []byte, count int) []byte {
	if count <= 8 {
		return append(out, tagRUN|byte(count-1))
	}
	v := count - 1
	return append(out, tagRUN2|byte(v>>8)&0x03, byte(v))
}

// flushRunForced always emits QOI_OP_RUN2, for a run ended by hitting
// maxRun or by reaching the last pixel of the image (spec.md §4.2 step 1).
func flushRunForced(out []byte, count int) []byte {
	v := count - 1
	return append(out, tagRUN2|byte(v>>8)&0x03, byte(v))
}

// appendChunk selects and emits the chunk for px given the preceding
// emitted pixel prev, per the cascade in spec.md §4.2. The pixel has
// already been recorded into the index ring and hash table by the caller.
func appendChunk(out []byte, px, prev pixel) []byte {
	vg := int(diff8(px.g, prev.g))
	vgr := int(diff8(px.r-prev.r, uint8(vg)))
	vgb := int(diff8(px.b-prev.b, uint8(vg)))

	switch {
	case vg >= -4 && vg <= -1 && vgr >= -1 && vgr <= 2 && vgb >= -1 && vgb <= 2:
		b := byte(vg+4)<<4 | byte(vgr+1)<<2 | byte(vgb+1)
		return append(out, b)

	case vg >= 0 && vg <= 3 && vgr >= -2 && vgr <= 1 && vgb >= -2 && vgb <= 1:
		b := byte(vg+4)<<4 | byte(vgr+2)<<2 | byte(vgb+2)
		return append(out, b)

	case px.r == px.g && px.g == px.b:
		return append(out, tagGRAY, px.r)

	case vg >= -16 && vg <= 15 && vgr >= -8 && vgr <= 7 && vgb >= -8 && vgb <= 7:
		b0 := tagLUMA2 | byte(vg+16)
		b1 := byte(vgr+8)<<4 | byte(vgb+8)
		return append(out, b0, b1)

	case vgr >= -32 && vgr <= 31 && vgb >= -32 && vgb <= 31:
		rr := byte(vgr + 32)
		bb := byte(vgb + 32)
		b0 := tagLUMA3 | rr>>2&0x0f
		b1 := rr&0x03<<6 | bb
		b2 := byte(vg + 128)
		return append(out, b0, b1, b2)

	default:
		return append(out, tagRGB, px.r, px.g, px.b)
	}
}
