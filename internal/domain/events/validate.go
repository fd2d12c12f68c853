package events

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Validate revisa los campos antes de serializarlos. Devuelve sólo la primera
// regla que falla; nil si todo está bien.
//
// Los largos se miden en code points y sobre el valor sin recortar.
func Validate(date, title, text string) error {
	if date == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

// ValidateDate exige una fecha de calendario real en formato YYYY-MM-DD.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateInput aplica Validate y luego ValidateDate.
func ValidateInput(in Input) error {
	if err := Validate(in.Date, in.Title, in.Text); err != nil {
		return err
	}
	return ValidateDate(in.Date)
}
