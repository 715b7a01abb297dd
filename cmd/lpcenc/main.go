// ABOUTME: Entry point for the LPC encoder CLI
// ABOUTME: Reads an audio file, analyzes it, and writes a binary stream
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lpcvox/lpcvox-go/internal/cli"
	"github.com/lpcvox/lpcvox-go/internal/version"
	"github.com/lpcvox/lpcvox-go/pkg/audio"
	"github.com/lpcvox/lpcvox-go/pkg/audio/resample"
	"github.com/lpcvox/lpcvox-go/pkg/audio/source"
	"github.com/lpcvox/lpcvox-go/pkg/lpc"
)

var (
	order         = flag.Int("order", lpc.DefaultOrder, "prediction filter order")
	frameSize     = flag.Int("frame-size", 0, "analysis window in samples (0 derives a 30 ms window)")
	overlap       = flag.Int("overlap", lpc.DefaultOverlapPercent, "window overlap percentage, 0-99")
	workers       = flag.Int("workers", 1, "parallel analysis goroutines")
	carryEmphasis = flag.Bool("carry-emphasis", false, "keep pre-emphasis state across frame boundaries")
	rate          = flag.Int("rate", 0, "resample the input to this rate before analysis (0 keeps the input rate)")
	profilePath   = flag.String("profile", "", "YAML profile with codec parameters (flags take precedence)")
	debug         = flag.Bool("debug", false, "enable debug logging")
	showVersion   = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: lpcenc [flags] input.{wav,mp3,flac} [output]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Encodes an audio file into an LPC stream. The output path defaults\nto the input name with a .bin extension.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s lpcenc %s\n", version.Product, version.Version)
		return 0
	}
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		return 2
	}

	slog.SetDefault(cli.NewLogger(*debug))

	if *profilePath != "" {
		if err := applyProfile(*profilePath); err != nil {
			slog.Error("profile rejected", "err", err)
			return 1
		}
	}

	input := flag.Arg(0)
	output := flag.Arg(1)
	if output == "" {
		output = strippedExt(input) + ".bin"
	}

	src, err := source.Open(input)
	if err != nil {
		slog.Error("open input", "err", err)
		return 1
	}
	buf, err := source.ReadAll(src)
	closeErr := src.Close()
	if err != nil {
		slog.Error("read input", "err", err)
		return 1
	}
	if closeErr != nil {
		slog.Error("close input", "err", closeErr)
		return 1
	}

	slog.Debug("audio loaded",
		"path", input,
		"sample_rate", buf.Format.SampleRate,
		"channels", buf.Format.Channels,
		"duration", buf.Duration(),
	)

	mono := audio.Downmix(buf.Samples, buf.Format.Channels)

	sampleRate := buf.Format.SampleRate
	if *rate > 0 && *rate != sampleRate {
		slog.Debug("resampling", "from", sampleRate, "to", *rate)
		mono = resample.Convert(mono, sampleRate, *rate)
		sampleRate = *rate
	}

	enc := lpc.NewEncoder(lpc.EncoderConfig{
		WindowSize:         *frameSize,
		OverlapPercent:     *overlap,
		Order:              *order,
		CarryEmphasisState: *carryEmphasis,
		Workers:            *workers,
	})
	stream, err := enc.Encode(mono, sampleRate)
	if err != nil {
		slog.Error("encode", "err", err)
		return 1
	}

	f, err := os.Create(output)
	if err != nil {
		slog.Error("create output", "err", err)
		return 1
	}
	written, err := stream.WriteTo(f)
	if err != nil {
		f.Close()
		slog.Error("write stream", "err", err)
		return 1
	}
	if err := f.Close(); err != nil {
		slog.Error("close output", "err", err)
		return 1
	}

	slog.Info("encoded",
		"input", input,
		"output", output,
		"frames", len(stream.Frames),
		"window", stream.Header.WindowSize,
		"order", stream.Header.Order,
		"bytes", written,
	)
	return 0
}

// applyProfile overlays profile values onto flags the user did not set
// explicitly on the command line.
func applyProfile(path string) error {
	p, err := cli.LoadProfile(path)
	if err != nil {
		return err
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if p.Order != nil && !explicit["order"] {
		*order = *p.Order
	}
	if p.FrameSize != nil && !explicit["frame-size"] {
		*frameSize = *p.FrameSize
	}
	if p.Overlap != nil && !explicit["overlap"] {
		*overlap = *p.Overlap
	}
	if p.Workers != nil && !explicit["workers"] {
		*workers = *p.Workers
	}
	if p.CarryEmphasis != nil && !explicit["carry-emphasis"] {
		*carryEmphasis = *p.CarryEmphasis
	}
	return nil
}

// strippedExt returns path without its final extension.
func strippedExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}
