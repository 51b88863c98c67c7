package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/smoothie-orders/backend/internal/workflow"
)

func newOrderCmd(open Opener) *cobra.Command {
	var (
		name   string
		fruits []string
		submit bool
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Build a smoothie and show its nutrition facts",
		Long: fmt.Sprintf("Select up to %d fruits with repeated --fruit flags. "+
			"Nutrition facts are shown for each one; pass --submit to place the order.", workflow.MaxIngredients),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, release, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			session := workflow.NewSession(cmd.Context(), deps)
			defer session.Close()

			if view := session.View(); view.CatalogError != "" {
				fmt.Fprintln(out, errorStyle.Render(view.CatalogError))
			}

			if err := session.SetName(name); err != nil {
				return err
			}
			if err := session.SetIngredients(cmd.Context(), fruits); err != nil {
				return fmt.Errorf("choosing ingredients: %w", err)
			}

			view := session.View()
			if view.NameLine != "" {
				fmt.Fprintln(out, view.NameLine)
			}
			for _, res := range view.Nutrition {
				renderNutrition(out, res)
			}

			if !submit {
				if view.SubmitAvailable {
					fmt.Fprintln(out, dimStyle.Render("Selection: "+strings.Join(view.Selection, ", ")+" (use --submit to order)"))
				}
				return nil
			}
			if !session.CanSubmit() {
				return workflow.ErrNothingToSubmit
			}

			_, err = session.Submit(cmd.Context())
			status := session.View().Status
			if err != nil {
				fmt.Fprintln(out, errorStyle.Render(status))
				return fmt.Errorf("submitting order: %w", err)
			}
			fmt.Fprintln(out, successStyle.Render(status))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name on the smoothie")
	cmd.Flags().StringArrayVar(&fruits, "fruit", nil, fmt.Sprintf("Fruit to add (repeatable, up to %d)", workflow.MaxIngredients))
	cmd.Flags().BoolVar(&submit, "submit", false, "Place the order")

	return cmd
}
