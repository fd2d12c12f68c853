// Package cmd arma los comandos de eventsctl.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"events-calendar/internal/client"
	"events-calendar/internal/domain/events"
)

const defaultServer = "http://localhost:8080"

// app es el estado compartido entre subcomandos; se completa en PersistentPreRunE.
type app struct {
	server  string
	timeout time.Duration
	locale  string

	api *client.Client
	loc events.Locale
}

// NewRootCmd devuelve un árbol de comandos nuevo (sin estado global).
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "eventsctl",
		Short: "Manage calendar events",
		Long: `eventsctl talks to an events-calendar server.
Each day holds at most one event with a title and a text.

Example:
  eventsctl add --date 2024-03-01 --title Meeting --text "Discuss roadmap"
  eventsctl list --month 2024-03`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			api, err := client.New(a.server, a.timeout)
			if err != nil {
				return err
			}
			a.api = api
			a.loc = events.ParseLocale(a.locale)
			return nil
		},
	}

	server := os.Getenv("EVENTS_SERVER")
	if server == "" {
		server = defaultServer
	}
	locale := os.Getenv("EVENTS_LOCALE")
	if locale == "" {
		locale = string(events.LocaleRU)
	}

	root.PersistentFlags().StringVarP(&a.server, "server", "s", server, "Server base URL (env EVENTS_SERVER)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Second, "HTTP timeout")
	root.PersistentFlags().StringVar(&a.locale, "locale", locale, "Date display locale: ru or en (env EVENTS_LOCALE)")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
	)
	return root
}
