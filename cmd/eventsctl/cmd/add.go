package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var date, title, text string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
		Long: `Create an event. The input is checked locally before anything is sent.

Example:
  eventsctl add --date 2024-03-01 --title Meeting --text "Discuss roadmap"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.api.Create(cmd.Context(), date, title, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	c.Flags().StringVar(&title, "title", "", "Event title (max 30 characters)")
	c.Flags().StringVar(&text, "text", "", "Event text (max 200 characters)")
	return c
}
