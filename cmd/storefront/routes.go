package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/site"
)

func newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the storefront route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH\tSTATUS\tTITLE")
			for _, route := range site.DefaultRoutes() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", route.Name, route.Path, route.Status, route.Title)
			}
			return w.Flush()
		},
	}

	return cmd
}
