package main

import (
	"fmt"
	"io"
	"os"

	"portfolio/admin"

	"github.com/spf13/cobra"
)

var kinds = []string{"projects", "blog", "research", "messages"}

// cli is the state shared by every subcommand.
type cli struct {
	in  io.Reader
	out io.Writer

	baseURL string
	apiKey  string
	client  *admin.Client
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{in: in, out: out}

	root := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Manage portfolio content over the JSON API",
		Long: `portfolioctl lists, creates, updates and deletes projects, blog posts,
research items and contact messages of a running portfolio site.

Example usage:
  portfolioctl list blog
  portfolioctl create projects -f project.json
  portfolioctl update research 4 -f research.json
  portfolioctl delete messages 12
  portfolioctl lookup 10.1000/xyz123 --create`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.baseURL == "" {
				return fmt.Errorf("--url or PORTFOLIO_URL is required")
			}
			c.client = admin.NewClient(c.baseURL, c.apiKey)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&c.baseURL, "url", os.Getenv("PORTFOLIO_URL"), "base URL of the site")
	root.PersistentFlags().StringVar(&c.apiKey, "api-key", os.Getenv("API_SECRET_KEY"), "API key sent as X-API-KEY")

	root.AddCommand(
		c.newListCmd(),
		c.newSaveCmd("create"),
		c.newSaveCmd("update"),
		c.newDeleteCmd(),
		c.newLookupCmd(),
	)
	return root
}

func validKind(kind string, allowMessages bool) error {
	for _, k := range kinds {
		if k == kind && (allowMessages || k != "messages") {
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", kind)
}
