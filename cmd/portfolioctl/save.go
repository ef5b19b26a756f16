package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"portfolio/admin"

	"github.com/spf13/cobra"
)

// newSaveCmd builds "create <kind>" and "update <kind> <id>", both reading the
// record as JSON from --file.
func (c *cli) newSaveCmd(verb string) *cobra.Command {
	var file string
	use, args := verb+" <projects|blog|research> -f file.json", cobra.ExactArgs(1)
	if verb == "update" {
		use, args = verb+" <projects|blog|research> <id> -f file.json", cobra.ExactArgs(2)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s a record from JSON (\"-\" reads stdin)", verb),
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validKind(args[0], false); err != nil {
				return err
			}
			var id uint
			if verb == "update" {
				n, err := strconv.ParseUint(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid id %q", args[1])
				}
				id = uint(n)
			}

			r, closeFn, err := c.open(file)
			if err != nil {
				return err
			}
			defer closeFn()

			d := admin.NewDashboard(c.client)
			ctx := cmd.Context()
			switch args[0] {
			case "projects":
				err = save(ctx, d.Projects, r, id)
			case "blog":
				err = save(ctx, d.Posts, r, id)
			case "research":
				err = save(ctx, d.Research, r, id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s: %s ok\n", args[0], verb)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file with the record")
	return cmd
}

func (c *cli) open(file string) (io.Reader, func(), error) {
	if file == "-" {
		return c.in, func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func save[T any, In any](ctx context.Context, coll *admin.Collection[T, In], r io.Reader, id uint) error {
	var in In
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	if id == 0 {
		return coll.Save(ctx, admin.CreateRequest[In]{Input: in})
	}
	return coll.Save(ctx, admin.UpdateRequest[In]{ID: id, Input: in})
}
