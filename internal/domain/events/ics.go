package events

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const icsProductID = "-//events-calendar//events-calendar 1.0//EN"

// UIDSuffix se agrega al ID para formar el UID de cada VEVENT.
const UIDSuffix = "@events-calendar"

// RenderICS arma un VCALENDAR con un VEVENT de día completo por evento.
func RenderICS(items []Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, e := range items {
		day, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			return "", fmt.Errorf("event %s: %w", e.ID, ErrInvalidDate)
		}

		ev := cal.AddEvent(e.ID + UIDSuffix)
		ev.SetSummary(e.Title)
		ev.SetDescription(e.Text)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))

		stamp := e.UpdatedAt
		if stamp.IsZero() {
			stamp = day
		}
		ev.SetDtStampTime(stamp.UTC())
	}

	return cal.Serialize(), nil
}
