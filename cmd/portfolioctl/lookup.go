package main

import (
	"encoding/json"
	"fmt"

	"portfolio/admin"
	"portfolio/services"

	"github.com/spf13/cobra"
)

func (c *cli) newLookupCmd() *cobra.Command {
	var create bool
	cmd := &cobra.Command{
		Use:   "lookup <doi>",
		Short: "Fetch DOI metadata as a research draft",
		Long: `Looks up a DOI in Europe PMC and Unpaywall through the site and prints
the resulting research draft as JSON. With --create the draft is saved as an
unpublished research item.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			draft, err := c.client.LookupDOI(ctx, args[0])
			if err != nil {
				return err
			}
			if !create {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(draft)
			}

			d := admin.NewDashboard(c.client)
			if err := d.Research.Save(ctx, admin.CreateRequest[services.ResearchInput]{Input: *draft}); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Created draft %q.\n", draft.Slug)
			return nil
		},
	}
	cmd.Flags().BoolVar(&create, "create", false, "save the draft as unpublished research")
	return cmd
}
