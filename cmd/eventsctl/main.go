package main

import (
	"os"

	"events-calendar/cmd/eventsctl/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
