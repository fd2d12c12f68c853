package events

import "errors"

const (
	// FieldSeparator separa los campos de un registro. No se escapa.
	FieldSeparator = "|"
	// RecordSeparator separa registros en un listado.
	RecordSeparator = "\n"

	// DateLayout es el formato de fecha del transporte (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	MaxTitleLength = 30
	MaxTextLength  = 200
)

// Reglas de validación, en el orden en que se evalúan.
var (
	ErrMissingDate  = errors.New("date is required")
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrTitleTooLong = errors.New("title must not exceed 30 characters")
	ErrEmptyText    = errors.New("text must not be empty")
	ErrTextTooLong  = errors.New("text must not exceed 200 characters")
)

var (
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrMalformedRecord = errors.New("malformed record: expected id|date|title|text or date|title|text")
	ErrNotFound        = errors.New("event not found")
	ErrDateTaken       = errors.New("date already has an event")
	ErrBodyTooLarge    = errors.New("request body too large")
)

// IsValidationError indica si err es una de las reglas de validación de campos
// (incluye fecha inválida y registro mal formado).
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrMissingDate,
		ErrEmptyTitle,
		ErrTitleTooLong,
		ErrEmptyText,
		ErrTextTooLong,
		ErrInvalidDate,
		ErrMalformedRecord,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
