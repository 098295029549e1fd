// Command qoi2 encodes and decodes qoi2 images from the command line,
// with PNG as the interchange format on the other side of each
// subcommand.
package main

import (
	"image/png"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-qoi2/qoi2"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("qoi2 command failed")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qoi2",
		Short:         "Encode and decode qoi2 images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newEncodeCmd(), newDecodeCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	var colorspace uint8
	cmd := &cobra.Command{
		Use:   "encode <input.png> <output.qoi2>",
		Short: "Encode a PNG file into qoi2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			log.Debug().Str("src", src).Str("dst", dst).Msg("encoding")

			in, err := os.Open(src)
			if err != nil {
				return errors.Wrap(err, "open input")
			}
			defer in.Close()

			decoded, err := png.Decode(in)
			if err != nil {
				return errors.Wrap(err, "decode png")
			}

			out, err := os.Create(dst)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			defer out.Close()

			if err := qoi2.EncodeImage(out, decoded); err != nil {
				return errors.Wrap(err, "encode qoi2")
			}
			log.Info().Str("dst", dst).Uint8("colorspace", colorspace).Msg("wrote qoi2 image")
			return nil
		},
	}
	cmd.Flags().Uint8Var(&colorspace, "colorspace", 0, "colorspace value (0=sRGB, 1=linear) echoed in the log only; the written header always records 0 (sRGB)")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input.qoi2> <output.png>",
		Short: "Decode a qoi2 file into PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			if !strings.HasSuffix(strings.ToLower(dst), ".png") {
				log.Warn().Str("dst", dst).Msg("output path does not end in .png")
			}

			in, err := os.Open(src)
			if err != nil {
				return errors.Wrap(err, "open input")
			}
			defer in.Close()

			decoded, err := qoi2.DecodeImage(in)
			if err != nil {
				return errors.Wrap(err, "decode qoi2")
			}

			out, err := os.Create(dst)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			defer out.Close()

			if err := png.Encode(out, decoded); err != nil {
				return errors.Wrap(err, "encode png")
			}
			log.Info().Str("dst", dst).Msg("wrote png image")
			return nil
		},
	}
	return cmd
}
