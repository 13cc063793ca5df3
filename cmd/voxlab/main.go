// SPDX-License-Identifier: EPL-2.0

// voxlab is the command-line face of the voice lab: record takes from
// the default input device, convert files between the registered
// formats, render waveform images, play audio, and fetch practice
// sentences from the remote voice service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/voxlab"
	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/capture"
	"github.com/ik5/voxlab/formats/wav"
	"github.com/ik5/voxlab/internal/config"
	"github.com/ik5/voxlab/playback"
	"github.com/ik5/voxlab/remote"
	"github.com/ik5/voxlab/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error

	switch os.Args[1] {
	case "record":
		err = runRecord(ctx, cfg, os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "render":
		err = runRender(cfg, os.Args[2:])
	case "play":
		err = runPlay(ctx, os.Args[2:])
	case "sentence":
		err = runSentence(ctx, cfg, os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Println("unknown command:", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "voxlab:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`usage: voxlab <command> [flags]

commands:
  record    capture a take from the default input device into a WAV file
  convert   decode an audio file and write mono 16-bit WAV at a target rate
  render    draw a waveform or spectral PNG from an audio file
  play      play an audio file with a live position readout
  sentence  fetch a practice sentence from the remote voice service

environment:
  VOXLAB_* variables set the defaults; see internal/config.`)
}

func runRecord(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	out := fs.String("o", "take.wav", "output WAV path")
	maxDur := fs.Duration("max", cfg.MaxDurationMS, "auto-stop after this long (0 = unbounded)")
	minDur := fs.Duration("min", cfg.MinDurationMS, "reject takes shorter than this")
	_ = fs.Parse(args)

	engine := capture.NewEngine()
	defer engine.Close()

	session := capture.NewSession(engine, capture.Config{
		SampleRate:  cfg.SampleRate,
		Channels:    cfg.Channels,
		MinDuration: *minDur,
		MaxDuration: *maxDur,
	})

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("starting take: %w", err)
	}

	fmt.Println("recording... press Ctrl-C to stop")

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-session.Done():
			// MaxDuration stopped the take on its own.
			break loop
		case <-ticker.C:
			fmt.Printf("\rlevel %-20s %6.1fs", levelBar(session.Level(), 20),
				session.Elapsed().Seconds())
		}
	}
	fmt.Println()

	rec, err := session.Stop()
	if err != nil {
		return fmt.Errorf("stopping take: %w", err)
	}

	if err := os.WriteFile(*out, rec.WAV, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}

	fmt.Printf("wrote %s: %s take at %d Hz", *out, rec.Duration.Round(100*time.Millisecond),
		rec.Buffer.Rate)
	if rec.Truncated {
		fmt.Print(" (truncated at max duration)")
	}
	fmt.Println()

	return nil
}

// levelBar renders level in [0,1] as a fixed-width meter.
func levelBar(level float64, width int) string {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	n := int(level * float64(width))
	bar := make([]byte, width)
	for i := range bar {
		if i < n {
			bar[i] = '='
		} else {
			bar[i] = ' '
		}
	}

	return string(bar)
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	out := fs.String("o", "out.wav", "output WAV path")
	rate := fs.Int("rate", 8000, "target sample rate in Hz")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Println("usage: voxlab convert [-o out.wav] [-rate hz] <input>")
		os.Exit(1)
	}

	rec, err := capture.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	// Pipeline: buffer -> resample -> 16-bit PCM
	src := audio.NewBufferSource(rec.Buffer)
	pcm16, outRate, err := voxlab.ResampleToMono16(src, *rate, 4096)
	if err != nil {
		return fmt.Errorf("resampling: %w", err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *out, err)
	}
	defer outFile.Close()

	if err := wav.WriteWAV16(outFile, outRate, pcm16); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}

	fmt.Printf("wrote %s: %d samples at %d Hz\n", *out, len(pcm16), outRate)

	return nil
}

func runRender(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	out := fs.String("o", "out.png", "output PNG path")
	mode := fs.String("mode", "waveform", "waveform or spectral")
	width := fs.Int("w", 800, "image width in pixels")
	height := fs.Int("h", 200, "image height in pixels")
	zoom := fs.Float64("zoom", 1, "zoom factor")
	bins := fs.Int("bins", cfg.Bins, "spectral bin count")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Println("usage: voxlab render [-o out.png] [-mode waveform|spectral] <input>")
		os.Exit(1)
	}

	var m render.Mode
	switch *mode {
	case "waveform":
		m = render.ModeWaveform
	case "spectral":
		m = render.ModeSpectral
	default:
		return fmt.Errorf("unknown render mode %q", *mode)
	}

	rec, err := capture.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	surface := render.NewSurface(*width, *height, 1)
	renderer := render.NewRenderer(surface, render.Options{
		Mode: m,
		Zoom: *zoom,
		Bins: *bins,
	})
	renderer.SetBuffer(rec.Buffer)
	renderer.Redraw()

	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *out, err)
	}
	defer outFile.Close()

	if err := surface.EncodePNG(outFile); err != nil {
		return fmt.Errorf("encoding %s: %w", *out, err)
	}

	fmt.Printf("wrote %s: %dx%d %s view\n", *out, surface.Width(), surface.Height(), m)

	return nil
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Println("usage: voxlab play <input>")
		os.Exit(1)
	}

	rec, err := capture.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	player, err := playback.NewPlayer(nil, rec.Buffer)
	if err != nil {
		return err
	}
	defer player.Close()

	player.Play()
	fmt.Println("playing... press Ctrl-C to stop")

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	step := 100 * time.Millisecond
	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
			pos := player.Position()
			fmt.Printf("\r%8s / %s", pos.Round(step), player.Duration().Round(step))
			if pos >= player.Duration() {
				fmt.Println()
				return nil
			}
		}
	}
}

func runSentence(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("sentence", flag.ExitOnError)
	minWords := fs.Int("min", 20, "minimum word count")
	maxWords := fs.Int("max", 25, "maximum word count")
	topic := fs.String("topic", "", "optional topic hint")
	_ = fs.Parse(args)

	client := remote.NewClient(remote.Config{
		BaseURL: cfg.RemoteURL,
		APIKey:  cfg.RemoteAPIKey,
		Timeout: cfg.RemoteTimeout,
	})

	resp, err := client.GenerateSentence(ctx, remote.GenerateSentenceRequest{
		MinWords: *minWords,
		MaxWords: *maxWords,
		Topic:    *topic,
	})
	if err != nil {
		return err
	}

	fmt.Println(resp.Sentence)
	fmt.Printf("(%d words)\n", resp.WordCount)

	return nil
}
