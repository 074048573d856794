package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/optionkit/pkg/controls"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		src   sourceFlags
		kind  string
		field controls.Field
	)
	cmd := &cobra.Command{
		Use:   "render [raw|-]",
		Short: "Render options as an HTML select, radio or checkbox control",
		Example: `  optionkit render --key prefecture --kind select --name prefecture --selected 13
  optionkit render "1:あり,0:なし" --kind radio --name parking`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := controls.ParseKind(kind)
			if err != nil {
				return err
			}
			if field.Name == "" {
				field.Name = src.key
			}
			if field.Name == "" {
				return fmt.Errorf("--name is required when rendering literal metadata")
			}
			list, err := src.list(a, cmd, args)
			if err != nil {
				return err
			}
			field.Options = list

			renderer, err := controls.New()
			if err != nil {
				return err
			}
			html, err := renderer.Render(k, field)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
	src.bind(cmd)
	cmd.Flags().StringVar(&kind, "kind", string(controls.KindSelect), "control kind: select, radio or checkbox")
	cmd.Flags().StringVar(&field.Name, "name", "", "form field name (defaults to --key)")
	cmd.Flags().StringVar(&field.Label, "label", "", "field label")
	cmd.Flags().StringVar(&field.Placeholder, "placeholder", "", "placeholder entry for selects")
	cmd.Flags().BoolVar(&field.Required, "required", false, "mark the control required")
	cmd.Flags().BoolVar(&field.Multiple, "multiple", false, "render a multi-select")
	cmd.Flags().StringSliceVar(&field.Selected, "selected", nil, "preselected values")
	return cmd
}
