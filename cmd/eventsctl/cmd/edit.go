package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	var date, title, text string

	c := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event",
		Long: `Edit an event. Fields without a flag keep their current value.

Example:
  eventsctl edit 3f2a... --title "New title"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			cur, err := a.api.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("date") {
				cur.Date = date
			}
			if flags.Changed("title") {
				cur.Title = title
			}
			if flags.Changed("text") {
				cur.Text = text
			}

			if err := a.api.Update(cmd.Context(), id, cur.Date, cur.Title, cur.Text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	c.Flags().StringVar(&title, "title", "", "New title")
	c.Flags().StringVar(&text, "text", "", "New text")
	return c
}
