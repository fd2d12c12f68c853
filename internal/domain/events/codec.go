package events

import "strings"

// Decode convierte un bloque de texto en registros.
//
// Cada línea con 4 campos se lee como id|date|title|text y con 3 campos como
// date|title|text. Las líneas con otra cantidad de campos se descartan sin
// error. Un bloque vacío (o sólo espacios) produce una lista vacía.
func Decode(raw string) []Record {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []Record{}
	}

	lines := strings.Split(raw, RecordSeparator)
	out := make([]Record, 0, len(lines))
	for _, line := range lines {
		r, ok := decodeLine(line)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

func decodeLine(line string) (Record, bool) {
	parts := strings.Split(line, FieldSeparator)
	switch len(parts) {
	case 4:
		id := parts[0]
		return Record{ID: &id, Date: parts[1], Title: parts[2], Text: parts[3]}, true
	case 3:
		return Record{Date: parts[0], Title: parts[1], Text: parts[2]}, true
	default:
		return Record{}, false
	}
}

// ParseRecord es la variante estricta de Decode para el cuerpo de un request:
// una sola línea que debe tener 3 o 4 campos.
func ParseRecord(line string) (Record, error) {
	r, ok := decodeLine(line)
	if !ok {
		return Record{}, ErrMalformedRecord
	}
	return r, nil
}

// Encode arma el payload de create/update: date|title|text, sin salto de línea final.
// Los campos no se escapan; un "|" o "\n" dentro de ellos rompe el registro.
func Encode(date, title, text string) string {
	return date + FieldSeparator + title + FieldSeparator + text
}

// EncodeRecord serializa un registro, anteponiendo el ID si lo tiene.
func EncodeRecord(r Record) string {
	line := Encode(r.Date, r.Title, r.Text)
	if r.ID == nil {
		return line
	}
	return *r.ID + FieldSeparator + line
}

// EncodeList serializa un listado: cada registro termina en "\n".
func EncodeList(records []Record) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(EncodeRecord(r))
		sb.WriteString(RecordSeparator)
	}
	return sb.String()
}
