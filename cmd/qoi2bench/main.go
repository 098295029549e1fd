// Command qoi2bench reports compression ratio and chunk-type histograms
// for a set of PNG images run through the qoi2 encoder, in the spirit of
// the Wuffs project's PNG decode benchmark harness but aimed at reporting
// compression behavior rather than throughput.
package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-qoi2/qoi2"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: qoi2bench <image.png> [image.png ...]")
	}

	for _, path := range os.Args[1:] {
		if err := benchOne(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("bench failed")
		}
	}
}

func benchOne(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return err
	}

	start := time.Now()
	var buf countingWriter
	if err := qoi2.EncodeImage(&buf, src); err != nil {
		return err
	}
	elapsed := time.Since(start)

	hist, err := qoi2.ChunkHistogram(buf.data)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	rawSize := pixels * 4
	ratio := float64(rawSize) / float64(len(buf.data))

	log.Info().
		Str("path", path).
		Int("encoded_bytes", len(buf.data)).
		Int("raw_bytes", rawSize).
		Float64("compression_ratio", ratio).
		Dur("encode_time", elapsed).
		Int("luma", hist.LUMA).
		Int("luma2", hist.LUMA2).
		Int("luma3", hist.LUMA3).
		Int("index", hist.INDEX).
		Int("run", hist.RUN).
		Int("run2", hist.RUN2).
		Int("gray", hist.GRAY).
		Int("rgb", hist.RGB).
		Int("a", hist.A).
		Msg("encoded")

	fmt.Printf("%s: %d -> %d bytes (%.2fx)\n", path, rawSize, len(buf.data), ratio)
	return nil
}

type countingWriter struct {
	data []byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}
