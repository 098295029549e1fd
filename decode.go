package qoi2

// Decode parses a complete qoi2 stream and returns the decoded pixel
// buffer plus the descriptor read from the header. requestedChannels is
// 0 (derive the output layout from the header), 3, or 4; any other value
// is an InvalidArgument.
//
// The decoder walks the byte stream once, testing for buffer overrun at
// most once per loop iteration: chunksLen excludes the four-byte padding
// trailer, and the longest chunk whose width isn't fixed by its tag alone
// (LUMA3, three bytes) never reads past the padding cushion even when the
// stream is malformed.
func Decode(data []byte, requestedChannels int) ([]byte, Descriptor, error) {
	if len(data) < HeaderSize+4 {
		return nil, Descriptor{}, newError(KindTruncated, "stream shorter than header plus padding")
	}
	desc, err := decodeHeader(data[:HeaderSize])
	if err != nil {
		return nil, Descriptor{}, err
	}
	if requestedChannels != 0 && requestedChannels != 3 && requestedChannels != 4 {
		return nil, Descriptor{}, newError(KindInvalidArgument, "requested channels must be 0, 3 or 4")
	}

	outChannels := int(desc.Channels)
	if requestedChannels != 0 {
		outChannels = requestedChannels
	}

	totalPixels := int(desc.Width) * int(desc.Height)
	pxLen := totalPixels * outChannels
	out := make([]byte, pxLen)

	chunksLen := len(data) - 4
	var idx indexRing
	px := sentinelPixel
	run := 0
	p := HeaderSize
	pxPos := 0

decodeLoop:
	for pxPos < pxLen {
		if run > 0 {
			run--
		} else if p < chunksLen {
			b1 := data[p]
			p++
			switch {
			case b1&maskLUMA == tagLUMA:
				vg := int(b1>>4&7) - 4
				rBits := int(b1 >> 2 & 3)
				bBits := int(b1 & 3)
				bias := 2
				if vg < 0 {
					bias = 1
				}
				px.g = add8(px.g, int8(vg))
				px.r = add8(px.r, int8(vg-bias+rBits))
				px.b = add8(px.b, int8(vg-bias+bBits))
				idx.insert(px)

			case b1&maskINDEX == tagINDEX:
				px = idx.at(b1 & 0x3f)

			case b1&maskLUMA2 == tagLUMA2:
				b2 := data[p]
				p++
				vg := int(b1&0x1f) - 16
				px.g = add8(px.g, int8(vg))
				px.r = add8(px.r, int8(vg-8+int(b2>>4&0x0f)))
				px.b = add8(px.b, int8(vg-8+int(b2&0x0f)))
				idx.insert(px)

			case b1&maskLUMA3 == tagLUMA3:
				b2 := data[p]
				b3 := data[p+1]
				p += 2
				vg := int(b3) - 128
				rBits := int(b1&0x0f)<<2 | int(b2>>6&3)
				bBits := int(b2 & 0x3f)
				px.g = add8(px.g, int8(vg))
				px.r = add8(px.r, int8(vg-32+rBits))
				px.b = add8(px.b, int8(vg-32+bBits))
				idx.insert(px)

			case b1&maskRUN == tagRUN:
				run = int(b1 & 0x07)

			case b1&maskRUN2 == tagRUN2:
				b2 := data[p]
				p++
				run = int(b1&0x03)<<8 | int(b2)

			case b1 == tagGRAY:
				v := data[p]
				p++
				px.r, px.g, px.b = v, v, v
				idx.insert(px)

			case b1 == tagRGB:
				px.r, px.g, px.b = data[p], data[p+1], data[p+2]
				p += 3
				idx.insert(px)

			case b1 == tagA:
				px.a = data[p]
				p++
				continue decodeLoop

			case b1 == tagEND:
				break decodeLoop
			}
		} else {
			break decodeLoop
		}

		out[pxPos*outChannels+0] = px.r
		out[pxPos*outChannels+1] = px.g
		out[pxPos*outChannels+2] = px.b
		if outChannels == 4 {
			out[pxPos*outChannels+3] = px.a
		}
		pxPos++
	}

	return out, desc, nil
}
