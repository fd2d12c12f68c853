package cmd

import (
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.api.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printCard(cmd.OutOrStdout(), rec, a.loc)
			return nil
		},
	}
}
