package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"portfolio/admin"

	"github.com/spf13/cobra"
)

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list <projects|blog|research|messages>",
		Aliases:   []string{"ls"},
		Short:     "List records, drafts included",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validKind(args[0], true); err != nil {
				return err
			}
			d := admin.NewDashboard(c.client)
			ctx := cmd.Context()
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			defer w.Flush()

			switch args[0] {
			case "projects":
				if err := d.Projects.Refresh(ctx); err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tTITLE\tTECH\tFEATURED")
				for _, p := range d.Projects.Items {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Title, strings.Join(p.TechStack, ", "), yesNo(p.Featured))
				}
			case "blog":
				if err := d.Posts.Refresh(ctx); err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tSLUG\tTITLE\tPUBLISHED\tCREATED")
				for _, p := range d.Posts.Items {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Slug, p.Title, yesNo(p.Published), p.CreatedAt.Format("2006-01-02"))
				}
			case "research":
				if err := d.Research.Refresh(ctx); err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tSLUG\tTYPE\tYEAR\tPUBLISHED")
				for _, r := range d.Research.Items {
					year := "-"
					if r.PublicationYear != nil {
						year = fmt.Sprint(*r.PublicationYear)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Slug, r.Type, year, yesNo(r.Published))
				}
			case "messages":
				if err := d.RefreshMessages(ctx); err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tFROM\tEMAIL\tRECEIVED")
				for _, m := range d.Messages {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.CreatedAt.Format("2006-01-02 15:04"))
				}
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
