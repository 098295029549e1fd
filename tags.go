package qoi2

// Chunk tag prefixes and masks, per the bit layouts in spec.md §6. Ordered
// by mask width so the decoder's cascading comparisons read top to bottom
// the same way the bits narrow.
const (
	tagLUMA  byte = 0x00 // 0xxxxxxx
	maskLUMA byte = 0x80

	tagINDEX  byte = 0x80 // 10xxxxxx
	maskINDEX byte = 0xC0

	tagLUMA2  byte = 0xC0 // 110xxxxx
	maskLUMA2 byte = 0xE0

	tagLUMA3  byte = 0xE0 // 1110xxxx
	maskLUMA3 byte = 0xF0

	tagRUN  byte = 0xF0 // 11110xxx
	maskRUN byte = 0xF8

	tagRUN2  byte = 0xF8 // 111110xx
	maskRUN2 byte = 0xFC

	tagGRAY byte = 0xFC // 11111100, exact
	tagRGB  byte = 0xFD // 11111101, exact
	tagA    byte = 0xFE // 11111110, exact
	tagEND  byte = 0xFF // 11111111, exact
)

// maxRun is the largest run length a single QOI_OP_RUN2 can encode, and the
// point at which the encoder must flush mid-stream even without a pixel
// transition.
const maxRun = 1024
