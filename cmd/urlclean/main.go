package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/aleister1102/urlclean/batch"
	"github.com/aleister1102/urlclean/internal/config"
	"github.com/aleister1102/urlclean/internal/logger"
)

func main() {
	flags := ParseFlags()

	cfg, err := config.LoadConfig(config.GetConfigPath(flags.ConfigFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Could not load config: %v\n", err)
		os.Exit(1)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Could not initialize logger: %v\n", err)
		os.Exit(1)
	}

	removing, err := buildRemovalSet(flags, cfg, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid removal set selection")
	}

	urls, err := readURLs(flags.InputFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("file", flags.InputFile).Msg("Could not read input URLs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleaner := batch.NewCleaner(batch.DefaultConfig(), zLogger)
	cleaned, stats, err := cleaner.CleanURLs(ctx, urls, removing)
	if err != nil {
		zLogger.Error().Err(err).Msg("Cleaning did not complete")
	}

	writer := bufio.NewWriter(os.Stdout)
	for _, u := range cleaned {
		fmt.Fprintln(writer, u)
	}
	if err := writer.Flush(); err != nil {
		zLogger.Fatal().Err(err).Msg("Could not write output")
	}

	zLogger.Info().
		Int("total", stats.TotalProcessed).
		Int("changed", stats.Changed).
		Msg("Done")
}

// buildRemovalSet resolves the flag/config combination into one removal
// set. -only bypasses the database entirely; otherwise flags override
// the config file's category and custom parameter selection.
func buildRemovalSet(flags AppFlags, cfg *config.Config, zLogger zerolog.Logger) (map[string]bool, error) {
	if len(flags.Only) > 0 {
		removing := make(map[string]bool, len(flags.Only))
		for _, name := range flags.Only {
			removing[strings.ToLower(name)] = true
		}
		zLogger.Debug().Strs("params", flags.Only).Msg("Removing only the named parameters")
		return removing, nil
	}

	cleanerConfig := cfg.CleanerConfig
	if len(flags.Categories) > 0 {
		cleanerConfig.Categories = flags.Categories
	}
	if len(flags.Params) > 0 {
		cleanerConfig.CustomParams = append(cleanerConfig.CustomParams, flags.Params...)
	}

	removing, err := config.RemovalSet(cleanerConfig)
	if err != nil {
		return nil, err
	}

	zLogger.Debug().
		Strs("categories", cleanerConfig.Categories).
		Int("removal_set_size", len(removing)).
		Msg("Built removal set")
	return removing, nil
}

// readURLs reads one URL per line from the given file, or from stdin
// when path is empty. Blank lines and #-comments are skipped.
func readURLs(path string) ([]string, error) {
	var reader *bufio.Scanner
	if path == "" {
		reader = bufio.NewScanner(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = bufio.NewScanner(file)
	}
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var urls []string
	for reader.Scan() {
		line := strings.TrimSpace(reader.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, reader.Err()
}
