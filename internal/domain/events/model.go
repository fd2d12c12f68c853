package events

import "time"

// Record es la vista de un evento tal como viaja en el formato de texto
// (`id|date|title|text` o `date|title|text`).
type Record struct {
	// ID es nil cuando la línea no trae identificador (registro aún no persistido).
	ID *string

	Date  string // YYYY-MM-DD
	Title string
	Text  string
}

// Event es un evento persistido. Hay como máximo uno por fecha.
type Event struct {
	ID string

	Date  string // YYYY-MM-DD
	Title string
	Text  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record convierte el evento a su forma de transporte (con ID).
func (e Event) Record() Record {
	id := e.ID
	return Record{
		ID:    &id,
		Date:  e.Date,
		Title: e.Title,
		Text:  e.Text,
	}
}

// Input son los campos editables de un evento.
type Input struct {
	Date  string
	Title string
	Text  string
}
