package cmd

import (
	"fmt"
	"io"

	"events-calendar/internal/domain/events"
)

// printCard escribe:
//
//	[<id>] <fecha formateada>
//	<título>
//	<texto>
func printCard(w io.Writer, r events.Record, loc events.Locale) {
	date, err := events.FormatDisplayDate(r.Date, loc)
	if err != nil {
		date = r.Date
	}

	id := ""
	if r.ID != nil {
		id = *r.ID
	}

	fmt.Fprintf(w, "[%s] %s\n%s\n%s\n", id, date, r.Title, r.Text)
}

func printCards(w io.Writer, recs []events.Record, loc events.Locale) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "no events yet")
		return
	}
	for i, r := range recs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printCard(w, r, loc)
	}
}
