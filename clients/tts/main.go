package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hekmon/fishtts"
	"github.com/hekmon/fishtts/internal/config"
	"github.com/hekmon/fishtts/internal/logging"
	"github.com/hekmon/fishtts/internal/wavout"
	"github.com/hekmon/liveprogress/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Flags
	configFile := flag.String("config", "", "YAML configuration file (optional, FISHTTS_* env vars override it).")
	voice := flag.String("voice", "", "Voice reference ID, overrides the configuration.")
	input := flag.String("input", "-", "Input text file to synthesize. Use - for stdin.")
	output := flag.String("output", "output.opus", "Output audio file. Use - for stdout.")
	chunksPerSecond := flag.Float64("chunkspersecond", -1, "Text chunks sending rate, overrides the configuration. Use it to simulate a LLM input.")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall synthesis timeout.")
	stats := flag.Bool("stats", false, "Print session metrics to stderr once done.")
	flag.Parse()

	// Configuration and logging
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}
	if *voice != "" {
		cfg.TTS.Voice = *voice
	}
	if *chunksPerSecond >= 0 {
		cfg.TTS.ChunksPerSecond = *chunksPerSecond
	}
	wrapWAV := cfg.TTS.Format == "pcm" && strings.HasSuffix(*output, ".wav")
	if wrapWAV && cfg.TTS.SampleRate == 0 {
		cfg.TTS.SampleRate = wavout.DefaultSampleRate
	}
	var (
		receivedChunks atomic.Int64
		receivedBytes  atomic.Int64
	)

	// Show progress when stdout is not used for audio, logs then go through
	// the progress bypass writer
	var (
		logger      *zap.Logger
		diagnostics io.Writer = os.Stderr
	)
	if *output != "-" {
		if err = liveprogress.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start progress display: %s\n", err)
			return 1
		}
		statsLine := liveprogress.AddCustomLine(func() string {
			return fmt.Sprintf("Receiving audio: %d chunks | %d bytes",
				receivedChunks.Load(), receivedBytes.Load(),
			)
		})
		defer func() {
			liveprogress.RemoveCustomLine(statsLine)
			_ = liveprogress.Stop(true)
		}()
		diagnostics = liveprogress.Bypass()
		logger = logging.NewWithWriter(cfg.Log.Level, cfg.Log.Format, diagnostics)
	} else if logger, err = logging.New(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	// Read input text
	text, err := readInput(*input)
	if err != nil {
		logger.Error("failed to read input", zap.Error(err))
		return 1
	}

	// Create the Fish.audio TTS client
	registry := prometheus.NewRegistry()
	metrics, err := fishtts.NewMetrics(cfg.Metrics.Namespace, registry)
	if err != nil {
		logger.Error("failed to register metrics", zap.Error(err))
		return 1
	}
	clientConfig := cfg.ClientConfig()
	clientConfig.Logger = logger
	clientConfig.Metrics = metrics
	clientConfig.OnAudio = func(size int) {
		receivedChunks.Add(1)
		receivedBytes.Add(int64(size))
	}
	ttsClient, err := fishtts.NewClient(clientConfig)
	if err != nil {
		logger.Error("failed to create the TTS client", zap.Error(err))
		return 1
	}

	// Synthesize
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()
	startTime := time.Now()
	audio, err := ttsClient.Synthesize(ctx, text)
	if err != nil {
		logger.Error("synthesis failed", zap.Error(err))
		return 2
	}
	logger.Info("audio received",
		zap.Int("bytes", len(audio)),
		zap.Duration("elapsed", time.Since(startTime).Round(time.Millisecond)),
	)

	// Write the audio
	if err = writeOutput(*output, audio, wrapWAV, cfg.TTS.SampleRate); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		return 1
	}
	if *stats {
		printStats(diagnostics, registry)
	}
	return 0
}

func readInput(filename string) (string, error) {
	var input io.Reader = os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return "", err
		}
		defer f.Close()
		input = f
	}
	scanner := bufio.NewScanner(input)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return strings.Join(lines, " "), scanner.Err()
}

func writeOutput(filename string, audio []byte, wrapWAV bool, sampleRate int) (err error) {
	if filename == "-" {
		_, err = os.Stdout.Write(audio)
		return
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %q file: %w", filename, err)
	}
	defer file.Close()
	if wrapWAV {
		return wavout.Write(file, audio, sampleRate)
	}
	if _, err = file.Write(audio); err != nil {
		return fmt.Errorf("failed to write %q file: %w", filename, err)
	}
	return
}

func printStats(out io.Writer, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		fmt.Fprintf(out, "failed to gather metrics: %s\n", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			var labels []string
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				fmt.Fprintf(out, "%s{%s} %g\n", family.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				fmt.Fprintf(out, "%s{%s} count=%d sum=%g\n", family.GetName(), strings.Join(labels, ","),
					metric.GetHistogram().GetSampleCount(), metric.GetHistogram().GetSampleSum())
			}
		}
	}
}
