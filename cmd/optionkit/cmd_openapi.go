package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estatedesk/optionkit/pkg/openapi"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var (
		source       string
		extensionKey string
		skipParams   bool
		timeout      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Extract option lists declared in an OpenAPI document",
		Long: `Reads x-options extensions (or plain enums) from component schema
properties and operation parameters and prints them normalized.`,
		Example: `  optionkit openapi --source ./api.yaml
  optionkit openapi --source https://example.com/openapi.json --extension x-choices`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			location := strings.TrimSpace(source)
			if location == "" {
				return fmt.Errorf("--source is required")
			}
			src := openapi.ParseSource(location)
			loader := openapi.NewLoader(openapi.WithHTTPFallback(timeout))
			doc, err := loader.Load(cmd.Context(), src)
			if err != nil {
				return err
			}

			extractOpts := []openapi.ExtractOption{
				openapi.WithNormalizer(a.normalizer()),
			}
			if extensionKey != "" {
				extractOpts = append(extractOpts, openapi.WithExtensionKey(extensionKey))
			}
			if skipParams {
				extractOpts = append(extractOpts, openapi.WithoutParameters())
			}
			fields, err := openapi.Extract(cmd.Context(), doc, extractOpts...)
			if err != nil {
				return err
			}
			a.logger.Debug("openapi options extracted",
				zap.String("source", location),
				zap.Int("fields", len(fields)))
			return writeOutput(cmd.OutOrStdout(), a.format, fields)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "OpenAPI document path or http(s) URL")
	cmd.Flags().StringVar(&extensionKey, "extension", openapi.DefaultExtensionKey, "schema extension carrying raw option metadata")
	cmd.Flags().BoolVar(&skipParams, "skip-parameters", false, "ignore operation parameters")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "timeout for remote documents")
	return cmd
}
