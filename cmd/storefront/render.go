package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/button"
	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/preview"
)

type renderOptions struct {
	spec     config.ButtonSpec
	terminal bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{spec: config.ButtonSpec{Name: "render"}}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build one button from flags and print its HTML",
		Example: `  storefront render --as button --label Buy --color success --size small
  storefront render --as input --type submit --value Send
  storefront render --as link --href /about --label About --variant outline --terminal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.spec.As, "as", "button", "Output kind: link, button or input")
	f.StringVar(&opts.spec.Label, "label", "", "Visible content")
	f.StringVar(&opts.spec.Href, "href", "", "Link destination")
	f.StringVar(&opts.spec.Target, "target", "", "Link target")
	f.StringVar(&opts.spec.Type, "type", "", "Input subtype: button, submit or reset")
	f.StringVar(&opts.spec.Value, "value", "", "Input value")
	f.StringVar(&opts.spec.Color, "color", "", "Colour: primary, secondary, success, danger, warning, info, light, dark")
	f.StringVar(&opts.spec.Variant, "variant", "", "Variant: outline, ghost or link")
	f.StringVar(&opts.spec.Shape, "shape", "", "Shape: pill or square")
	f.StringVar(&opts.spec.Size, "size", "", "Size: small, medium or large")
	f.StringVar(&opts.spec.Class, "class", "", "Extra class tokens appended after the derived ones")
	f.StringVar(&opts.spec.Leading, "leading", "", "Leading icon text")
	f.StringVar(&opts.spec.Trailing, "trailing", "", "Trailing icon text")
	f.BoolVar(&opts.spec.Disabled, "disabled", false, "Render the control disabled")
	f.BoolVar(&opts.terminal, "terminal", false, "Preview in the terminal instead of printing HTML")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	cfg, warnings := opts.spec.Button(nil)
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
	}

	if opts.terminal {
		fmt.Fprintln(cmd.OutOrStdout(), preview.Button(preview.DefaultTheme(), cfg, false))
		return nil
	}

	res := buildAndReport(cmd, cfg, rootFlags.verbose)
	if res.Empty() {
		return nil
	}
	if err := res.Render(cmd.OutOrStdout()); err != nil {
		return newCommandError("render", "writing HTML", err, "Check the label and icon values.")
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// buildAndReport builds cfg and writes why nothing was rendered, or any
// caveats, to stderr.
func buildAndReport(cmd *cobra.Command, cfg button.Config, verbose bool) button.Result {
	res := button.Build(cfg)
	if res.Empty() {
		fmt.Fprintf(cmd.ErrOrStderr(), "nothing rendered: %v\n", res.Reason())
		return res
	}
	for _, w := range res.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
	}
	if verbose {
		node, _ := res.Node()
		fmt.Fprintf(cmd.ErrOrStderr(), "element=%s disabled=%t classes=%q\n", node.Element(), node.Disabled(), node.Classes().String())
	}
	return res
}
