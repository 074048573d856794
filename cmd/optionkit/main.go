package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/estatedesk/optionkit/pkg/catalog"
	"github.com/estatedesk/optionkit/pkg/options"
	"github.com/estatedesk/optionkit/pkg/prompt"
)

// app carries the state shared by subcommands.
type app struct {
	verbose    bool
	catalogDir string
	format     string

	logger *zap.Logger
	driver prompt.PromptDriver
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "optionkit",
		Short: "Normalize and inspect form option metadata",
		Long: `optionkit converts option metadata (code:label text, JSON arrays,
legacy id/name records) into canonical {value,label} lists and serves,
renders or picks from them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.catalogDir, "catalog", "catalogs", "directory holding JSON/YAML option catalogs")
	flags.StringVarP(&a.format, "format", "f", "json", "output format: json or yaml")

	root.AddCommand(
		newNormalizeCmd(a),
		newLabelsCmd(a),
		newGroupsCmd(a),
		newCatalogCmd(a),
		newOpenAPICmd(a),
		newFetchCmd(a),
		newRenderCmd(a),
		newPickCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) normalizer() *options.Normalizer {
	return options.NewNormalizer(options.WithLogger(a.logger))
}

func (a *app) loadCatalog() (*catalog.Store, error) {
	dir := strings.TrimSpace(a.catalogDir)
	if dir == "" {
		return nil, fmt.Errorf("catalog directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is not a directory", dir)
	}
	return catalog.LoadFS(os.DirFS(dir),
		catalog.WithLogger(a.logger),
		catalog.WithNormalizer(a.normalizer()))
}

func (a *app) promptDriver() prompt.PromptDriver {
	if a.driver != nil {
		return a.driver
	}
	return prompt.NewSurveyDriver()
}
