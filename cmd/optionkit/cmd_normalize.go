package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/estatedesk/optionkit/pkg/options"
)

// sourceFlags select where the raw option metadata comes from: a catalog key
// or literal text (argument or stdin).
type sourceFlags struct {
	key    string
	asJSON bool
}

func (s *sourceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.key, "key", "k", "", "read raw metadata from this catalog key instead of the argument")
	cmd.Flags().BoolVar(&s.asJSON, "json", false, "decode the argument as a JSON document before normalizing")
}

func (s *sourceFlags) list(a *app, cmd *cobra.Command, args []string) (options.List, error) {
	if key := strings.TrimSpace(s.key); key != "" {
		store, err := a.loadCatalog()
		if err != nil {
			return nil, err
		}
		list, ok := store.Options(key)
		if !ok {
			return nil, fmt.Errorf("catalog: unknown key %q", key)
		}
		return list, nil
	}
	text, err := readRaw(cmd.InOrStdin(), args)
	if err != nil {
		return nil, err
	}
	return a.normalizer().Normalize(rawValue(text, s.asJSON)), nil
}

func newNormalizeCmd(a *app) *cobra.Command {
	var src sourceFlags
	var query string
	cmd := &cobra.Command{
		Use:   "normalize [raw|-]",
		Short: "Print the canonical option list for raw metadata",
		Example: `  optionkit normalize "1:一戸建て,2:マンション"
  optionkit normalize --json '[{"id":1,"name":"東京"}]'
  optionkit normalize --key property_type --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := src.list(a, cmd, args)
			if err != nil {
				return err
			}
			if query != "" {
				list = options.Filter(list, query)
			}
			return writeOutput(cmd.OutOrStdout(), a.format, list)
		},
	}
	src.bind(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "keep only options whose value or label matches")
	return cmd
}

func newLabelsCmd(a *app) *cobra.Command {
	var src sourceFlags
	var values []string
	cmd := &cobra.Command{
		Use:   "labels [raw|-]",
		Short: "Resolve stored values to display labels",
		Example: `  optionkit labels --key facilities --value 2 --value 5
  optionkit labels "1:駐車場,2:エレベーター" --value 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(values) == 0 {
				return fmt.Errorf("at least one --value is required")
			}
			list, err := src.list(a, cmd, args)
			if err != nil {
				return err
			}
			var labels []string
			if len(values) == 1 {
				labels = []string{options.LabelFor(list, values[0])}
			} else {
				labels = options.LabelsFor(list, values)
			}
			return writeOutput(cmd.OutOrStdout(), a.format, labels)
		},
	}
	src.bind(cmd)
	cmd.Flags().StringArrayVar(&values, "value", nil, "stored value to resolve (repeatable)")
	return cmd
}

func newGroupsCmd(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "groups [raw|-]",
		Short: "Print options partitioned by group in first-seen order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := src.list(a, cmd, args)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.format, options.GroupBy(list))
		},
	}
	src.bind(cmd)
	return cmd
}
