package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFruitsCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "fruits",
		Short: "List the fruits you can put in a smoothie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, release, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			catalog, err := deps.Catalog.LoadCatalog(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, errorStyle.Render("Error fetching data from the catalog: "+err.Error()))
			}

			t := newTable("Fruit", "Search value")
			for _, o := range catalog.Options() {
				t.Row(o.FruitName, o.SearchOn)
			}
			fmt.Fprintln(out, t.Render())
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d fruits", catalog.Len())))
			return nil
		},
	}
}
