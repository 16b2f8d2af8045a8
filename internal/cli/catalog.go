package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every shape in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, s := range c.All() {
				w, h := s.Bounds()
				fmt.Fprintf(out, "%d %s %dx%d\n%s\n\n", i, c.Name(i), w, h, s)
			}
			fmt.Fprintf(out, "%d shapes\n", c.Len())
			return nil
		},
	}
}
