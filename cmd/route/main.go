// Command route classifies a single utterance and prints the routing decision as JSON.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"patient-intake-router/config"
	"patient-intake-router/internal/bootstrap"
	"patient-intake-router/internal/router"
	"patient-intake-router/pkg/log"
)

func main() {
	var (
		text       = flag.String("text", "", "utterance to route; read from stdin when empty")
		configPath = flag.String("config", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
		verbose    = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if err := run(*text, *configPath, *verbose, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "route:", err)
		os.Exit(1)
	}
}

func run(text, configPath string, verbose bool, stdin io.Reader, stdout io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{Level: cfg.Logger.Level, Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}

	if text == "" {
		text, err = readUtterance(stdin)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return printDecision(stdout, components.Router.ProcessUserInput(ctx, text))
}

func readUtterance(r io.Reader) (string, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func printDecision(w io.Writer, d router.Decision) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
