package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestFormatDisplayDate(t *testing.T) {
	got, err := FormatDisplayDate("2024-03-01", LocaleRU)
	require.NoError(t, err)
	assert.Equal(t, "пятница, 1 марта 2024 г.", got)

	got, err = FormatDisplayDate("2024-03-01", LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, "Friday, March 1, 2024", got)

	got, err = FormatDisplayDate("2024-12-29", LocaleRU)
	require.NoError(t, err)
	assert.Equal(t, "воскресенье, 29 декабря 2024 г.", got)
}

func TestFormatDisplayDate_NoDayShiftInAnyZone(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-10", -10*3600),
		time.FixedZone("UTC+14", 14*3600),
		time.FixedZone("UTC-03:30", -(3*3600 + 1800)),
	}
	for _, z := range zones {
		t.Run(z.String(), func(t *testing.T) {
			withLocal(t, z)

			got, err := FormatDisplayDate("2024-03-01", LocaleEN)
			require.NoError(t, err)
			assert.Equal(t, "Friday, March 1, 2024", got)
			assert.NotContains(t, got, "February 29")
			assert.NotContains(t, got, "March 2")
		})
	}
}

func TestFormatDisplayDate_Invalid(t *testing.T) {
	_, err := FormatDisplayDate("2024-02-30", LocaleRU)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = FormatDisplayDate("", LocaleEN)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleRU, ParseLocale(""))
	assert.Equal(t, LocaleRU, ParseLocale("ru-RU"))
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale(" EN-us "))
	assert.Equal(t, LocaleRU, ParseLocale("de"))
}
