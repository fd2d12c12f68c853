package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var month string

	c := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events in creation order.

Example:
  eventsctl list
  eventsctl list --month 2024-03`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.api.List(cmd.Context(), month)
			if err != nil {
				return err
			}
			printCards(cmd.OutOrStdout(), recs, a.loc)
			return nil
		},
	}

	c.Flags().StringVarP(&month, "month", "m", "", "Only events of this month (YYYY-MM)")
	return c
}
