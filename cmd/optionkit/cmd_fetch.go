package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/estatedesk/optionkit/pkg/fetch"
)

func newFetchCmd(a *app) *cobra.Command {
	var (
		ep      fetch.Endpoint
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Load options from a remote JSON endpoint",
		Example: `  optionkit fetch https://api.example.com/stations --results data.items \
    --value-field id --label-field name --param line=yamanote`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep.URL = strings.TrimSpace(args[0])
			if ep.URL == "" {
				return fmt.Errorf("url is required")
			}
			client := fetch.New(
				fetch.WithHTTPClient(&http.Client{Timeout: timeout}),
				fetch.WithNormalizer(a.normalizer()),
				fetch.WithLogger(a.logger),
			)
			list, err := client.Fetch(cmd.Context(), ep)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.format, list)
		},
	}
	cmd.Flags().StringVar(&ep.Method, "method", http.MethodGet, "HTTP method")
	cmd.Flags().StringVar(&ep.ResultsPath, "results", "", "dotted path to the records inside the payload")
	cmd.Flags().StringVar(&ep.ValueField, "value-field", "", "dotted path of the value inside each record")
	cmd.Flags().StringVar(&ep.LabelField, "label-field", "", "dotted path of the label inside each record")
	cmd.Flags().StringToStringVar(&ep.Params, "param", nil, "query parameter key=value (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}
