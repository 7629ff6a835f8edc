package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hekmon/fishtts"
	"github.com/hekmon/fishtts/internal/config"
	"github.com/hekmon/fishtts/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Flags
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	configFile := flags.String("config", "", "YAML configuration file (optional, FISHTTS_* env vars override it).")
	server := flags.String("server", "", "The websocket URL of the Fish.audio TTS endpoint, overrides the configuration.")
	voice := flags.String("voice", "", "Voice reference ID, overrides the configuration.")
	timeout := flags.Duration("timeout", 30*time.Second, "Overall validation timeout.")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return 1
	}
	if *server != "" {
		cfg.TTS.URL = *server
	}
	if *voice != "" {
		cfg.TTS.Voice = *voice
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	clientConfig := cfg.ClientConfig()
	clientConfig.Logger = logger
	result := fishtts.ValidationResultFor(fishtts.Validate(ctx, clientConfig))
	if !result.Valid {
		fmt.Fprintf(os.Stderr, "%s (%s)\n", result.Reason, result.Detail)
		return 2
	}
	fmt.Fprintln(os.Stderr, "Connection parameters are valid.")
	return 0
}
