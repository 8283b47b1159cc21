package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/osmtools/speedlimits"
	"github.com/osmtools/speedlimits/fetch"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "speedlimits",
		Short:   "Extract legal speed limits from the reference wiki page",
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var (
		url     string
		input   string
		output  string
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract road types and speed limits to JSON",
		Long: `Extract fetches the reference page (or reads a local HTML file),
runs the road-type and speed-table extractors plus the cross-reference
validation passes, and writes the combined result as JSON.

Warnings never abort the extraction; they are logged and the result stays
usable.

Example:
  speedlimits extract --output legal_default_speeds.json
  speedlimits extract --input page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			extractor, err := openSource(url, input, timeout)
			if err != nil {
				return err
			}

			result, warnings, err := extractor.Extract()
			if err != nil {
				return fmt.Errorf("extracting: %w", err)
			}

			for _, w := range warnings {
				logger.Warn(string(w))
			}
			logger.Info("extraction complete",
				zap.Int("roadTypes", len(result.RoadTypes)),
				zap.Int("jurisdictions", len(result.SpeedLimitsByCountryCode)),
				zap.Int("warnings", len(warnings)))

			return writeJSON(result, output)
		},
	}

	cmd.Flags().StringVar(&url, "url", fetch.DefaultURL, "page URL to fetch")
	cmd.Flags().StringVar(&input, "input", "", "local HTML file (skips fetching)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "fetch timeout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func openSource(url, input string, timeout time.Duration) (*speedlimits.Extractor, error) {
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", input, err)
		}
		defer f.Close()
		return speedlimits.FromReader(f), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	tables, err := fetch.NewClient().WithURL(url).Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return speedlimits.FromTables(tables), nil
}

func writeJSON(result speedlimits.Result, output string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
