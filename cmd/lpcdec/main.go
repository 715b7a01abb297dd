// ABOUTME: Entry point for the LPC decoder CLI
// ABOUTME: Reads a binary or legacy stream, synthesizes audio, writes or plays it
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lpcvox/lpcvox-go/internal/cli"
	"github.com/lpcvox/lpcvox-go/internal/version"
	"github.com/lpcvox/lpcvox-go/pkg/audio/output"
	"github.com/lpcvox/lpcvox-go/pkg/audio/wav"
	"github.com/lpcvox/lpcvox-go/pkg/lpc"
)

var (
	play             = flag.Bool("play", false, "play the decoded audio")
	normalizeOverlap = flag.Bool("normalize-overlap", false, "divide overlapped samples by their frame coverage")
	carryEmphasis    = flag.Bool("carry-emphasis", false, "keep de-emphasis state across frame boundaries")
	legacy           = flag.Bool("legacy", false, "read the deprecated text stream format")
	profilePath      = flag.String("profile", "", "YAML profile with codec parameters (flags take precedence)")
	debug            = flag.Bool("debug", false, "enable debug logging")
	showVersion      = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: lpcdec [flags] input.bin [output.wav]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Synthesizes audio from an LPC stream. The output file may be\nomitted when -play is set.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s lpcdec %s\n", version.Product, version.Version)
		return 0
	}

	input := flag.Arg(0)
	outPath := flag.Arg(1)
	if input == "" || flag.NArg() > 2 || (outPath == "" && !*play) {
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

	stream, err := readStream(input, *legacy)
	if err != nil {
		slog.Error("read stream", "err", err)
		return 1
	}
	slog.Debug("stream loaded",
		"path", input,
		"frames", len(stream.Frames),
		"window", stream.Header.WindowSize,
		"sample_rate", stream.Header.SampleRate,
		"order", stream.Header.Order,
	)

	dec := lpc.NewDecoder(lpc.DecoderConfig{
		CarryEmphasisState: *carryEmphasis,
		NormalizeOverlap:   *normalizeOverlap,
	})
	samples, err := dec.Decode(stream)
	if err != nil {
		slog.Error("decode", "err", err)
		return 1
	}

	if outPath != "" {
		if err := writeWAV(outPath, samples, stream.Header.SampleRate); err != nil {
			slog.Error("write output", "err", err)
			return 1
		}
		slog.Info("decoded", "input", input, "output", outPath, "samples", len(samples))
	}

	if *play {
		if err := playSamples(samples, stream.Header.SampleRate); err != nil {
			slog.Error("playback", "err", err)
			return 1
		}
	}
	return 0
}

func readStream(path string, legacyText bool) (*lpc.Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if legacyText {
		return lpc.ReadLegacyText(f)
	}
	stream := &lpc.Stream{}
	if _, err := stream.ReadFrom(f); err != nil {
		return nil, err
	}
	return stream, nil
}

func writeWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wav.Encode(f, samples, sampleRate, 1); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func playSamples(samples []float64, sampleRate int) error {
	out := output.NewOto()
	if err := out.Open(sampleRate, 1); err != nil {
		return err
	}
	defer out.Close()

	slog.Info("playing", "samples", len(samples), "sample_rate", sampleRate)
	if err := out.Write(samples); err != nil {
		return err
	}
	return out.Drain()
}

func applyProfile(path string) error {
	p, err := cli.LoadProfile(path)
	if err != nil {
		return err
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if p.CarryEmphasis != nil && !explicit["carry-emphasis"] {
		*carryEmphasis = *p.CarryEmphasis
	}
	if p.NormalizeOverlap != nil && !explicit["normalize-overlap"] {
		*normalizeOverlap = *p.NormalizeOverlap
	}
	return nil
}
