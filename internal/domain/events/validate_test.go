package events

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name              string
		date, title, text string
		want              error
	}{
		{"ok", "2024-01-01", "Meeting", "Discuss roadmap", nil},
		{"missing date", "", "t", "x", ErrMissingDate},
		{"empty title", "2024-01-01", "", "x", ErrEmptyTitle},
		{"blank title", "2024-01-01", " \t ", "x", ErrEmptyTitle},
		{"title too long", "2024-01-01", strings.Repeat("x", 31), "y", ErrTitleTooLong},
		{"title at limit", "2024-01-01", strings.Repeat("x", 30), "y", nil},
		{"empty text", "2024-01-01", "t", "", ErrEmptyText},
		{"blank text", "2024-01-01", "t", "\n  ", ErrEmptyText},
		{"text too long", "2024-01-01", "t", strings.Repeat("y", 201), ErrTextTooLong},
		{"text at limit", "2024-01-01", "t", strings.Repeat("y", 200), nil},
		// Orden fijo: todo falla, sólo se reporta la fecha.
		{"first rule wins", "", "", "", ErrMissingDate},
		{"title before text", "2024-01-01", strings.Repeat("x", 31), "", ErrTitleTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.date, tc.title, tc.text)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_LengthCountsCodePoints(t *testing.T) {
	// 30 letras cirílicas son 60 bytes pero 30 code points.
	title := strings.Repeat("я", 30)
	assert.NoError(t, Validate("2024-01-01", title, "x"))
	assert.ErrorIs(t, Validate("2024-01-01", title+"я", "x"), ErrTitleTooLong)

	text := strings.Repeat("🙂", 200)
	assert.NoError(t, Validate("2024-01-01", "t", text))
}

func TestValidate_LengthMeasuredBeforeTrim(t *testing.T) {
	title := " " + strings.Repeat("x", 30)
	assert.ErrorIs(t, Validate("2024-01-01", title, "x"), ErrTitleTooLong)
}

func TestValidate_DoesNotCheckDateFormat(t *testing.T) {
	assert.NoError(t, Validate("tomorrow", "t", "x"))
	assert.ErrorIs(t, ValidateInput(Input{Date: "tomorrow", Title: "t", Text: "x"}), ErrInvalidDate)
}

func TestValidateDate(t *testing.T) {
	for _, ok := range []string{"2024-01-01", "2024-02-29", "1999-12-31"} {
		assert.NoError(t, ValidateDate(ok), ok)
	}
	for _, bad := range []string{"", "2023-02-29", "2024-1-1", "01-01-2024", "2024-01-01T00:00:00"} {
		assert.ErrorIs(t, ValidateDate(bad), ErrInvalidDate, bad)
	}
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyText))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", ErrInvalidDate)))
	assert.True(t, IsValidationError(ErrMalformedRecord))
	assert.False(t, IsValidationError(ErrNotFound))
	assert.False(t, IsValidationError(ErrDateTaken))
	assert.False(t, IsValidationError(errors.New("other")))
}
