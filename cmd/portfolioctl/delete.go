package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"portfolio/admin"

	"github.com/spf13/cobra"
)

func (c *cli) newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <projects|blog|research|messages> <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a record after confirmation",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if err := validKind(kind, true); err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}

			var confirm admin.Confirm = admin.Always
			if !yes {
				confirm = c.prompt(kind)
			}

			d := admin.NewDashboard(c.client)
			ctx := cmd.Context()
			var done bool
			switch kind {
			case "projects":
				done, err = d.Projects.Delete(ctx, uint(n), confirm)
			case "blog":
				done, err = d.Posts.Delete(ctx, uint(n), confirm)
			case "research":
				done, err = d.Research.Delete(ctx, uint(n), confirm)
			case "messages":
				done, err = d.DeleteMessage(ctx, uint(n), confirm)
			}
			if err != nil {
				return err
			}
			if !done {
				fmt.Fprintln(c.out, "Cancelled.")
				return nil
			}
			fmt.Fprintf(c.out, "Deleted %s %d.\n", kind, n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// prompt asks on the command's input; anything but y/yes cancels.
func (c *cli) prompt(kind string) admin.Confirm {
	return func(id uint) bool {
		fmt.Fprintf(c.out, "Are you sure you want to delete %s %d? [y/N] ", kind, id)
		answer, _ := bufio.NewReader(c.in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
