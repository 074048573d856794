package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/optionkit/pkg/options"
	"github.com/estatedesk/optionkit/pkg/prompt"
)

func newPickCmd(a *app) *cobra.Command {
	var (
		src     sourceFlags
		multi   bool
		message string
		current []string
	)
	cmd := &cobra.Command{
		Use:   "pick [raw|-]",
		Short: "Choose options interactively and print the chosen values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := src.list(a, cmd, args)
			if err != nil {
				return err
			}
			if message == "" {
				message = "Select an option"
				if src.key != "" {
					message = fmt.Sprintf("Select %s", src.key)
				}
			}

			driver := a.promptDriver()
			var picked []string
			if multi {
				picked, err = prompt.PickMany(cmd.Context(), driver, message, list, current)
			} else {
				var value string
				var first string
				if len(current) > 0 {
					first = current[0]
				}
				value, err = prompt.Pick(cmd.Context(), driver, message, list, first)
				picked = []string{value}
			}
			if errors.Is(err, prompt.ErrAborted) {
				a.logger.Debug("pick aborted")
				return err
			}
			if err != nil {
				return err
			}

			type choice struct {
				Value string `json:"value" yaml:"value"`
				Label string `json:"label" yaml:"label"`
			}
			out := make([]choice, 0, len(picked))
			for _, value := range picked {
				out = append(out, choice{Value: value, Label: options.LabelFor(list, value)})
			}
			return writeOutput(cmd.OutOrStdout(), a.format, out)
		},
	}
	src.bind(cmd)
	cmd.Flags().BoolVarP(&multi, "multi", "m", false, "allow several selections")
	cmd.Flags().StringVar(&message, "message", "", "prompt text")
	cmd.Flags().StringSliceVar(&current, "current", nil, "values selected by default")
	return cmd
}
