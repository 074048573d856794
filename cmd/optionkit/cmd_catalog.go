package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type catalogSummary struct {
	Key    string `json:"key" yaml:"key"`
	Source string `json:"source" yaml:"source"`
	Count  int    `json:"count" yaml:"count"`
}

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect option catalogs on disk",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog keys with their source file and option count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadCatalog()
			if err != nil {
				return err
			}
			out := make([]catalogSummary, 0, store.Len())
			for _, key := range store.Keys() {
				entry, _ := store.Entry(key)
				out = append(out, catalogSummary{Key: key, Source: entry.Source, Count: len(entry.Options)})
			}
			return writeOutput(cmd.OutOrStdout(), a.format, out)
		},
	}

	show := &cobra.Command{
		Use:   "show <key>",
		Short: "Show the raw and normalized metadata of one key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadCatalog()
			if err != nil {
				return err
			}
			entry, ok := store.Entry(args[0])
			if !ok {
				return fmt.Errorf("catalog: unknown key %q", args[0])
			}
			return writeOutput(cmd.OutOrStdout(), a.format, entry)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
