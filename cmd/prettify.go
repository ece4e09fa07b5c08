package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fqdbg/fixprint/fix"
	"github.com/fqdbg/fixprint/internal/config"
	"github.com/fqdbg/fixprint/internal/log"
	"github.com/fqdbg/fixprint/prettify"
	"github.com/fqdbg/fixprint/reduce"
	"github.com/spf13/cobra"
)

var PrettifyCmd = &cobra.Command{
	Use:          "prettify query.json",
	Short:        "Render a verification query as legible text",
	RunE:         runPrettify,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	prettifyOutPath *string
	configPath      *string
	logLevel        *int
)

func init() {
	prettifyOutPath = PrettifyCmd.Flags().StringP("out", "o", "", "query output file (the rendering gets a .prettified extension)")
	configPath = PrettifyCmd.Flags().StringP("config", "c", "fixprint.yaml", "config file path")
	logLevel = PrettifyCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runPrettify(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if *prettifyOutPath != "" {
		cfg.Out = *prettifyOutPath
	}

	q, err := fix.ReadQueryFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read query: %w", err)
	}
	if err := q.Validate(); err != nil {
		return fmt.Errorf("malformed query: %w", err)
	}

	p := prettify.New(cfg.ANFDepth, cfg.InlineDepth, reduce.DefaultPasses())
	_, err = prettify.SaveQuery(cfg.Out, q, p)
	return err
}
