package events

import (
	"fmt"
	"strings"
	"time"
)

// Locale define el idioma de FormatDisplayDate.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// ParseLocale acepta "ru", "ru-RU", "en", "en-US", etc. Por defecto ru.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "en"):
		return LocaleEN
	default:
		return LocaleRU
	}
}

// Nombres en caso genitivo: "1 марта", no "1 март".
var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var ruWeekdays = [...]string{
	"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
}

// FormatDisplayDate muestra una fecha YYYY-MM-DD en forma larga:
//
//	ru: "пятница, 1 марта 2024 г."
//	en: "Friday, March 1, 2024"
//
// La fecha se interpreta como medianoche local (nunca UTC), así que el día
// mostrado es siempre el del string, sin importar la zona horaria.
func FormatDisplayDate(date string, loc Locale) (string, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	switch loc {
	case LocaleEN:
		return t.Format("Monday, January 2, 2006"), nil
	default:
		return fmt.Sprintf("%s, %d %s %d г.",
			ruWeekdays[t.Weekday()], t.Day(), ruMonths[t.Month()-1], t.Year()), nil
	}
}
