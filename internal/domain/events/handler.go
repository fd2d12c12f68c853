package events

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	// APIRoot es la raíz de la API de eventos.
	APIRoot = "/api/v1/events"

	maxBodyBytes = 1 << 20 // 1MB
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route(APIRoot, func(er chi.Router) {
		er.Post("/", createEventHandler(svc))
		er.Get("/", listEventsHandler(svc))

		er.Get("/by-date/{date}/", getEventByDateHandler(svc))
		er.Get("/availability/{date}/", dateAvailabilityHandler(svc))

		er.Get("/{eventID}/", getEventHandler(svc))
		er.Put("/{eventID}/", updateEventHandler(svc))
		er.Delete("/{eventID}/", deleteEventHandler(svc))
	})

	r.Get(APIRoot+".ics", exportICSHandler(svc))
}

// createEventHandler godoc
// @Summary Crear evento
// @Description Crea un evento. El cuerpo es una línea `date|title|text` (también se acepta `id|date|title|text`; el id se ignora). Sólo puede haber un evento por fecha.
// @Tags events
// @Accept plain
// @Produce plain
// @Param payload body string true "date|title|text"
// @Success 201 {string} string "ID del evento creado"
// @Failure 400 {string} string "registro mal formado / validación"
// @Failure 409 {string} string "la fecha ya tiene un evento"
// @Failure 413 {string} string "cuerpo mayor a 1MB"
// @Router /events/ [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readInput(w, r)
		if err != nil {
			writeError(w, err)
			return
		}

		e, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Location", APIRoot+"/"+e.ID+"/")
		writeText(w, http.StatusCreated, e.ID)
	}
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Devuelve los eventos en orden de creación, una línea `id|date|title|text` por evento.
// @Tags events
// @Produce plain
// @Param month query string false "Filtrar por mes (YYYY-MM)"
// @Param limit query int false "Máximo de eventos a devolver"
// @Success 200 {string} string "listado"
// @Failure 400 {string} string "mes inválido"
// @Router /events/ [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			Month: strings.TrimSpace(r.URL.Query().Get("month")),
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}

		writeText(w, http.StatusOK, EncodeList(toRecords(items)))
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags events
// @Produce plain
// @Param eventID path string true "ID del evento"
// @Success 200 {string} string "id|date|title|text"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/ [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Get(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, EncodeRecord(e.Record()))
	}
}

// getEventByDateHandler godoc
// @Summary Obtener evento por fecha
// @Tags events
// @Produce plain
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {string} string "id|date|title|text"
// @Failure 400 {string} string "fecha inválida"
// @Failure 404 {string} string "event not found"
// @Router /events/by-date/{date}/ [get]
func getEventByDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByDate(r.Context(), chi.URLParam(r, "date"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, EncodeRecord(e.Record()))
	}
}

// dateAvailabilityHandler godoc
// @Summary Consultar si una fecha está libre
// @Tags events
// @Produce plain
// @Param date path string true "Fecha YYYY-MM-DD"
// @Param exclude query string false "ID de evento a ignorar (edición)"
// @Success 200 {string} string "true / false"
// @Router /events/availability/{date}/ [get]
func dateAvailabilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := svc.IsDateAvailable(r.Context(), chi.URLParam(r, "date"), r.URL.Query().Get("exclude"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, strconv.FormatBool(ok))
	}
}

// updateEventHandler godoc
// @Summary Actualizar evento
// @Tags events
// @Accept plain
// @Produce plain
// @Param eventID path string true "ID del evento"
// @Param payload body string true "date|title|text"
// @Success 200 {string} string "updated"
// @Failure 400 {string} string "registro mal formado / validación"
// @Failure 404 {string} string "event not found"
// @Failure 409 {string} string "la fecha ya tiene un evento"
// @Failure 413 {string} string "cuerpo mayor a 1MB"
// @Router /events/{eventID}/ [put]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readInput(w, r)
		if err != nil {
			writeError(w, err)
			return
		}

		if _, err := svc.Update(r.Context(), chi.URLParam(r, "eventID"), in); err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, "updated")
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento
// @Description Idempotente: borrar un ID inexistente también responde 200.
// @Tags events
// @Produce plain
// @Param eventID path string true "ID del evento"
// @Success 200 {string} string "deleted"
// @Router /events/{eventID}/ [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
			writeError(w, err)
			return
		}
		writeText(w, http.StatusOK, "deleted")
	}
}

// exportICSHandler godoc
// @Summary Exportar calendario ICS
// @Tags events
// @Produce text/calendar
// @Success 200 {string} string "VCALENDAR"
// @Router /events.ics [get]
func exportICSHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{})
		if err != nil {
			writeError(w, err)
			return
		}
		body, err := RenderICS(items)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	}
}

// readInput rechaza cuerpos de más de maxBodyBytes en vez de truncarlos.
func readInput(w http.ResponseWriter, r *http.Request) (Input, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Input{}, ErrBodyTooLarge
		}
		return Input{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	rec, err := ParseRecord(strings.TrimRight(string(raw), "\r\n"))
	if err != nil {
		return Input{}, err
	}
	return Input{Date: rec.Date, Title: rec.Title, Text: rec.Text}, nil
}

func toRecords(items []Event) []Record {
	out := make([]Record, 0, len(items))
	for _, e := range items {
		out = append(out, e.Record())
	}
	return out
}

// writeError traduce errores de dominio a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDateTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrBodyTooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
