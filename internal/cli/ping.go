package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping URL",
		Short: "Check that a host answers HTTP requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.ParseRequestURI(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			if err := c.Reachable(cmd.Context(), u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is reachable\n", u.Host)
			return nil
		},
	}
}
